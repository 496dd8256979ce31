package errors

import rpccode "google.golang.org/genproto/googleapis/rpc/code"

//DrinkgoError Error with code.
type DrinkgoError interface {
	Code() rpccode.Code
	Error() string
}

//CustomError Custom error (who would guess)
type CustomError struct {
	Msg string
}

func (e *CustomError) Error() string {
	return e.Msg
}

//UnknownError Unknown error
type UnknownError struct {
	Msg string
}

func (e *UnknownError) Error() string {
	return e.Msg
}

//Code Code of the error.
func (e *UnknownError) Code() rpccode.Code {
	return rpccode.Code_INTERNAL
}

//MalformedRequestError Error for malformed request
type MalformedRequestError struct {
	Status rpccode.Code
	Msg    string
}

func (mr *MalformedRequestError) Error() string {
	return mr.Msg
}

//Code Code of the error.
func (mr *MalformedRequestError) Code() rpccode.Code {
	return rpccode.Code_INVALID_ARGUMENT
}

//NotFoundError Error for missing record
type NotFoundError struct {
	Msg string
}

func (mr *NotFoundError) Error() string {
	return mr.Msg
}

//Code Code of the error.
func (mr *NotFoundError) Code() rpccode.Code {
	return rpccode.Code_NOT_FOUND
}

//UnauthenticatedError Error for unverifiable identity
type UnauthenticatedError struct {
	Msg string
}

func (mr *UnauthenticatedError) Error() string {
	return mr.Msg
}

//Code Code of the error.
func (mr *UnauthenticatedError) Code() rpccode.Code {
	return rpccode.Code_UNAUTHENTICATED
}

//ConflictError Error for an operation refused by a domain rule
type ConflictError struct {
	Msg string
}

func (mr *ConflictError) Error() string {
	return mr.Msg
}

//Code Code of the error.
func (mr *ConflictError) Code() rpccode.Code {
	return rpccode.Code_FAILED_PRECONDITION
}
