package domain

import "errors"

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrInvalidAmount = errors.New("invalid amount")
var ErrInvalidPeriod = errors.New("invalid period")
var ErrCategoryNotFound = errors.New("category not found")
var ErrRecordNotFound = errors.New("record not found")
