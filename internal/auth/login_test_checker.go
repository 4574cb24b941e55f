package auth

import "context"

// LoginTestChecker is a Checker for unit tests, resolving every token
// to a fixed user.
type LoginTestChecker struct {
	TestUserID string
	Err        error
}

func (ltc *LoginTestChecker) UserID(_ context.Context, _ string) (string, error) {
	if ltc.Err != nil {
		return "", ltc.Err
	}
	return ltc.TestUserID, nil
}
