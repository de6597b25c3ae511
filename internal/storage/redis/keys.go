package redis

import "fmt"

// Key prefix for all engine data
const keyPrefix = "scrabble"

// rulesKey returns the Redis key for a named rules document
func rulesKey(name string) string {
	return fmt.Sprintf("%s:rules:%s", keyPrefix, name)
}

// lexiconKey returns the Redis key for a named lexicon source text
func lexiconKey(name string) string {
	return fmt.Sprintf("%s:lexicon:%s", keyPrefix, name)
}

// rulesIndexKey returns the Redis key for the SET of stored rules names
func rulesIndexKey() string {
	return fmt.Sprintf("%s:idx:rules", keyPrefix)
}

// lexiconIndexKey returns the Redis key for the SET of stored lexicon names
func lexiconIndexKey() string {
	return fmt.Sprintf("%s:idx:lexicons", keyPrefix)
}
