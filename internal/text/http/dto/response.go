package dto

// TokenizeResponse is the body returned by the tokenize endpoint.
type TokenizeResponse struct {
	Tokens []string `json:"tokens"`
}

// MapTokensToResponse builds a TokenizeResponse. A nil slice is encoded as an empty array.
func MapTokensToResponse(tokens []string) TokenizeResponse {
	if tokens == nil {
		tokens = []string{}
	}
	return TokenizeResponse{Tokens: tokens}
}
