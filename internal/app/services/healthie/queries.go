package healthie

const queryGetUser = `
query getUser($id: ID) {
  user(id: $id) {
    id
    first_name
    last_name
    email
    phone_number
    dob
    gender
  }
}`

const querySearchUsers = `
query searchUsers($keywords: String) {
  users(keywords: $keywords, should_paginate: false) {
    id
    first_name
    last_name
    email
    phone_number
    dob
    gender
  }
}`

const queryGetCustomModuleForm = `
query getCustomModuleForm($id: ID) {
  customModuleForm(id: $id) {
    id
    name
    custom_modules {
      id
      label
      mod_type
      required
      options
    }
  }
}`

const mutationCreateFormAnswerGroup = `
mutation createFormAnswerGroup($user_id: String, $custom_module_form_id: String, $finished: Boolean, $form_answers: [FormAnswerInput!]!) {
  createFormAnswerGroup(input: {
    user_id: $user_id
    custom_module_form_id: $custom_module_form_id
    finished: $finished
    form_answers: $form_answers
  }) {
    form_answer_group {
      id
    }
    messages {
      field
      message
    }
  }
}`

const queryListFormAnswerGroups = `
query listFormAnswerGroups($user_id: ID) {
  formAnswerGroups(user_id: $user_id) {
    id
    name
    created_at
    finished_at
  }
}`

const queryGetFormAnswerGroup = `
query getFormAnswerGroup($id: ID) {
  formAnswerGroup(id: $id) {
    id
    name
    created_at
    finished_at
    user {
      id
      first_name
      last_name
      dob
    }
    form_answers {
      label
      answer
      custom_module {
        id
        label
        mod_type
      }
    }
  }
}`

const mutationDeleteFormAnswerGroup = `
mutation deleteFormAnswerGroup($id: ID) {
  deleteFormAnswerGroup(input: { id: $id }) {
    form_answer_group {
      id
    }
    messages {
      field
      message
    }
  }
}`
