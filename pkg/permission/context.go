package permission

import "context"

// Subject context management
type subjectCtxKey struct{}

// SetSubjectToContext stores the authenticated subject in the context for
// downstream access checks.
func SetSubjectToContext(ctx context.Context, s *Subject) context.Context {
	return context.WithValue(ctx, subjectCtxKey{}, s)
}

// GetSubjectFromContext retrieves the subject from the context, if present.
func GetSubjectFromContext(ctx context.Context) (*Subject, bool) {
	s, ok := ctx.Value(subjectCtxKey{}).(*Subject)
	return s, ok && s != nil
}

// RequireFromContext checks the subject carried by the context. A missing
// subject fails closed.
func RequireFromContext(ctx context.Context, resource, action string) error {
	s, ok := GetSubjectFromContext(ctx)
	if !ok {
		return Require(nil, resource, action)
	}
	return Require(s, resource, action)
}
