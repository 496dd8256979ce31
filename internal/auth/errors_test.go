package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapSignInCode(t *testing.T) {

	tables := []struct {
		code   string
		reason string
	}{
		{"EMAIL_NOT_FOUND", ReasonUserNotFound},
		{"INVALID_PASSWORD", ReasonWrongPassword},
		{"INVALID_LOGIN_CREDENTIALS", ReasonWrongPassword},
		{"EMAIL_EXISTS", ReasonEmailInUse},
		{"WEAK_PASSWORD : Password should be at least 6 characters", ReasonWeakPassword},
		{"INVALID_EMAIL", ReasonInvalidEmail},
		{"TOO_MANY_ATTEMPTS_TRY_LATER : Access to this account has been temporarily disabled", ReasonTooManyRequests},
		{"SOMETHING_ELSE", ReasonGeneric},
		{"", ReasonGeneric},
	}

	for _, table := range tables {
		err := MapSignInCode(table.code)

		assert.Equal(t, table.reason, err.Reason, "code %v", table.code)
		assert.NotEmpty(t, err.Msg, "code %v", table.code)
		assert.Equal(t, err.Msg, err.Error())
	}
}
