package dto

import "github.com/allisson/primetime/internal/numbers/domain"

// FactorsResponse is the body returned by the factors endpoint. Factors is null for n = 0.
type FactorsResponse struct {
	N       int64   `json:"n"`
	Factors []int64 `json:"factors"`
}

// IsPrimeResponse is the body returned by the is-prime endpoint.
type IsPrimeResponse struct {
	N       int64 `json:"n"`
	IsPrime bool  `json:"is_prime"`
}

// PrimesResponse is the body returned by the primes endpoint. Primes is null when
// InRange is false.
type PrimesResponse struct {
	Count   int     `json:"count"`
	InRange bool    `json:"in_range"`
	Primes  []int64 `json:"primes"`
}

// MapFactorsToResponse builds a FactorsResponse.
func MapFactorsToResponse(n int64, factors []int64) FactorsResponse {
	return FactorsResponse{N: n, Factors: factors}
}

// MapIsPrimeToResponse builds an IsPrimeResponse.
func MapIsPrimeToResponse(n int64, isPrime bool) IsPrimeResponse {
	return IsPrimeResponse{N: n, IsPrime: isPrime}
}

// MapPrimesToResponse builds a PrimesResponse, flagging whether count was in range.
func MapPrimesToResponse(count int, primes []int64) PrimesResponse {
	return PrimesResponse{
		Count:   count,
		InRange: domain.InRange(count),
		Primes:  primes,
	}
}
