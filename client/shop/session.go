package shop

import (
	"log"
	"sync"

	"github.com/PhornSunnich/emall-cambodia/client/localstore"
)

// Session holds the signed-in user, or nobody. Logging out removes only
// the identity: the cart and favorites belong to the device, not the
// account, and survive.
type Session struct {
	mu    sync.Mutex
	store localstore.Store
	user  *User
	token string
}

func NewSession(store localstore.Store) *Session {
	s := &Session{store: store}
	var u User
	if store.Load(KeyUser, &u) {
		s.user = &u
		store.Load(KeyToken, &s.token)
	}
	return s
}

// Login records user as the current identity along with their API token.
func (s *Session) Login(user User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user
	s.token = token
	if err := s.store.Save(KeyUser, user); err != nil {
		log.Println("shop: session persist failed:", err)
	}
	if err := s.store.Save(KeyToken, token); err != nil {
		log.Println("shop: token persist failed:", err)
	}
}

// Logout clears the current identity. It must not touch cart or
// favorites state.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.token = ""
	if err := s.store.Delete(KeyUser); err != nil {
		log.Println("shop: session delete failed:", err)
	}
	if err := s.store.Delete(KeyToken); err != nil {
		log.Println("shop: token delete failed:", err)
	}
}

// Current returns a copy of the signed-in user, or nil when anonymous.
func (s *Session) Current() *User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token returns the bearer token for API calls, empty when anonymous.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}
