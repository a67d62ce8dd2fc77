package adminauth

import "context"

// Verifier is the external identity collaborator that checks an
// email/password pair. A rejected pair comes back as *RejectedError (the
// collaborator's reported failure outcome, message optional); any other
// error is an unexpected fault and must not reach end users verbatim.
type Verifier interface {
	Verify(ctx context.Context, email, password string) (Verification, error)
}

type Verification struct {
	ProviderUID string
	Email       string
}

type RejectedError struct {
	// Message is the collaborator-supplied user-facing text; empty means
	// the caller should fall back to a generic message.
	Message string
	// Reason is the provider's machine code, kept for logs only.
	Reason string
}

func (e *RejectedError) Error() string {
	if e.Reason != "" {
		return "identity rejected: " + e.Reason
	}
	return "identity rejected"
}
