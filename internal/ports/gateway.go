package ports

import "context"

type Peer struct {
	ID       int64
	Username string
}

type Chat struct {
	ID       int64
	Username string
	Title    string
	// Ref is the reference the chat was resolved from: a username or an invite link.
	Ref string
}

type Profile struct {
	ID        int64
	FirstName string
	LastName  string
	Username  string
}

type WebViewRequest struct {
	Peer         Peer
	Platform     string
	ShortName    string
	StartParam   string
	WriteAllowed bool
}

// Gateway is the chat-platform client an account authenticates through. Implementations
// report revoked, deactivated or unregistered credentials as domain.ErrInvalidSession.
type Gateway interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	IsConnected() bool
	ResolvePeer(ctx context.Context, username string) (Peer, error)
	RequestAppWebView(ctx context.Context, req WebViewRequest) (string, error)
	ResolveChat(ctx context.Context, ref string) (Chat, error)
	IsChatMember(ctx context.Context, chat Chat) (bool, error)
	JoinChat(ctx context.Context, ref string) (Chat, error)
	GetMe(ctx context.Context) (Profile, error)
	UpdateProfile(ctx context.Context, firstName string) error
}
