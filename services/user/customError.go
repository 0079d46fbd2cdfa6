package user

// DuplicateEmailError signals that an account with the email already exists.
type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return "a user with email " + e.Email + " already exists"
}

// InvalidCredentialsError signals a failed email/password check.
type InvalidCredentialsError struct{}

func (e *InvalidCredentialsError) Error() string {
	return "invalid email or password"
}
