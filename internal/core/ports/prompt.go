package ports

// PasswordPrompt asks the operator for a secret without echoing it.
//
//go:generate mockgen -source=prompt.go -destination=mocks/mock_prompt.go -package=mocks
type PasswordPrompt interface {
	ReadPassword(prompt string) (string, error)
}
