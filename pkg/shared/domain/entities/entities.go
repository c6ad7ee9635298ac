package entities

// Entity is a minimal marker interface used as a generic constraint
// by the message queue workers and their mappers.
type Entity interface{}
