package handler

import (
	"bytes"
	"encoding/json"
)

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

type RegistrationRequest struct {
	Fullname         string `json:"fullname"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	RepeatedPassword string `json:"repeated_password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token    string `json:"token"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	UserID   int64  `json:"user_id"`
}

type BoardRequest struct {
	Title   string  `json:"title"`
	Members []int64 `json:"members"`
}

type BoardPatchRequest struct {
	Title   *string  `json:"title"`
	Members *[]int64 `json:"members"`
}

type TaskRequest struct {
	Board       *int64  `json:"board"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	AssigneeID  *int64  `json:"assignee_id"`
	ReviewerID  *int64  `json:"reviewer_id"`
	DueDate     string  `json:"due_date"`
}

type TaskPatchRequest struct {
	Board       *int64         `json:"board"`
	Title       *string        `json:"title"`
	Description optionalString `json:"description"`
	Status      *string        `json:"status"`
	Priority    *string        `json:"priority"`
	AssigneeID  optionalID     `json:"assignee_id"`
	ReviewerID  optionalID     `json:"reviewer_id"`
	DueDate     *string        `json:"due_date"`
}

type CommentRequest struct {
	Content string `json:"content"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

var jsonNull = []byte("null")

// optionalID records whether the key was present; null leaves Value nil.
type optionalID struct {
	Set   bool
	Value *int64
}

func (o *optionalID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, jsonNull) {
		o.Value = nil
		return nil
	}
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

type optionalString struct {
	Set   bool
	Value *string
}

func (o *optionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, jsonNull) {
		o.Value = nil
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}
