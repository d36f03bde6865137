package response

import "movie-reviews/pkg/utils"

type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type AccessTokenResponse struct {
	Access string `json:"access"`
}

func TokenPairToResponse(pair utils.TokenPair) TokenPairResponse {
	return TokenPairResponse{Access: pair.Access, Refresh: pair.Refresh}
}
