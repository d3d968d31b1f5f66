package dto

import "net/http"

// Response is the envelope every API response body is wrapped in.
type Response struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
	StatusCode int    `json:"statusCode"`
}

// OK wraps a successful payload.
func OK(data any, message string) Response {
	return Response{Success: true, Message: message, Data: data, StatusCode: http.StatusOK}
}

// Created wraps a payload for a newly created resource.
func Created(data any, message string) Response {
	return Response{Success: true, Message: message, Data: data, StatusCode: http.StatusCreated}
}

// Error wraps a failure message; Data is always null.
func Error(message string, statusCode int) Response {
	return Response{Success: false, Message: message, StatusCode: statusCode}
}

// PageParams are the query parameters shared by every paginated endpoint.
type PageParams struct {
	Page int `form:"page,default=0" binding:"min=0,max=1000000"`
	Size int `form:"size,default=10" binding:"min=1,max=100"`
}

// PageResponse is the wire form of domain.Page.
type PageResponse[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}
