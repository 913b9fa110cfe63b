package model

import "errors"

var (
	ErrStackInvalid       = errors.New("stack invalid")
	ErrSecretsMissing     = errors.New("messaging secrets missing")
	ErrDeploymentNotFound = errors.New("deployment not found")
)
