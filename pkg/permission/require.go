package permission

import "errors"

// Require returns an error when the subject may not perform action on
// resource. It is the error-returning form of Subject.Can for call sites
// that propagate authorization failures.
func Require(s *Subject, resource, action string) error {
	if s == nil {
		return errors.Join(ErrNoSubject, ErrPermissionDenied)
	}
	if !s.Can(resource, action) {
		return ErrPermissionDenied
	}
	return nil
}

// RequireAny returns an error unless the subject holds at least one of the
// actions on resource.
func RequireAny(s *Subject, resource string, actions ...string) error {
	if s == nil {
		return errors.Join(ErrNoSubject, ErrPermissionDenied)
	}
	if len(actions) == 0 {
		return nil
	}
	if !s.CanAny(resource, actions...) {
		return ErrPermissionDenied
	}
	return nil
}

// RequireAll returns an error unless the subject holds every action on
// resource.
func RequireAll(s *Subject, resource string, actions ...string) error {
	if s == nil {
		return errors.Join(ErrNoSubject, ErrPermissionDenied)
	}
	if !s.CanAll(resource, actions...) {
		return ErrPermissionDenied
	}
	return nil
}
