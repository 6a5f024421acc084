package cache

import "strings"

const (
	GlobalKeyPrefix = "quizmark"
)

// Service and object names used to build keys.
const (
	ServiceQuizText = "quiztext"
	ServiceDraft    = "draft"

	ObjectParsed = "parsed"
	ObjectQuiz   = "quiz"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// ParsedQuestionsKey is the key for cached parse results of a text.
func ParsedQuestionsKey(contentHash string) string {
	return GenerateCacheKey(ServiceQuizText, ObjectParsed, contentHash)
}

// DraftKey is the key holding the draft with the given id.
func DraftKey(id string) string {
	return GenerateCacheKey(ServiceDraft, ObjectQuiz, id)
}
