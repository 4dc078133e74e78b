package server

import "realty-catalog/internal/catalog"

type listingsResponse struct {
	Count    int               `json:"count"`
	Listings []catalog.Listing `json:"listings"`
}

type reloadResponse struct {
	Listings int `json:"listings"`
}

type healthResponse struct {
	Status   string `json:"status"`
	Listings int    `json:"listings"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}
