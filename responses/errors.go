package responses

import "errors"

// HTTPErrorUnauthorized - upstream said 401; callers branch on it to
// reject the login instead of retrying.
var HTTPErrorUnauthorized = errors.New("unauthorized")
