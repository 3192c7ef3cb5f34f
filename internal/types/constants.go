package types

const ContextAccountKey = "account"
