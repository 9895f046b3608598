package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthenticated indicates that no authenticated session was present.
var ErrUnauthenticated = errors.New("authentication required")

// ErrForbidden indicates the acting user is not allowed to perform the operation.
var ErrForbidden = errors.New("operation not permitted")

// ErrUserNotFound indicates the resolved user ID has no backing user row.
var ErrUserNotFound = errors.New("user not found")

// ErrCoachNotFound indicates the target coach record does not exist.
var ErrCoachNotFound = errors.New("coach not found")

// ErrDuplicateRegistration indicates the user already owns a coach profile.
var ErrDuplicateRegistration = errors.New("user already has a coach registration")

// ErrDuplicateNationalID indicates the national ID number is already claimed by
// a different coach.
var ErrDuplicateNationalID = errors.New("national ID number already registered")

// ErrLocationPersistence indicates the location lookup-or-create failed.
var ErrLocationPersistence = errors.New("failed to resolve location")

// ErrBatchNotFoundOrClosed indicates the training batch does not exist, is
// inactive, or its registration deadline has passed.
var ErrBatchNotFoundOrClosed = errors.New("training batch not found or closed for registration")

// ErrBatchFull indicates the training batch has reached its participant limit.
var ErrBatchFull = errors.New("training batch is full")

// ErrAlreadyRegistered indicates the coach is already enrolled in the batch.
var ErrAlreadyRegistered = errors.New("coach already registered to this batch")
