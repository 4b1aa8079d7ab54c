package uidom

import (
	"context"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
)

type sessionLoadedKey struct{}

// markSessionLoaded flags requests that went through LoadAndSave, so
// session reads never hit a context without session data.
func markSessionLoaded(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionLoadedKey{}, true)))
	})
}

func sessionLoaded(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	loaded, _ := ctx.Value(sessionLoadedKey{}).(bool)
	return loaded
}

// Session is the browser's session, persisted across page loads. Without
// a session manager, or outside a request that loaded one, reads return
// zero values and writes are dropped.
type Session struct {
	ctx     context.Context
	manager *scs.SessionManager
}

func newSession(ctx context.Context, manager *scs.SessionManager) *Session {
	if manager == nil || !sessionLoaded(ctx) {
		return &Session{}
	}
	return &Session{ctx: ctx, manager: manager}
}

func (s *Session) live() bool {
	return s.manager != nil && s.ctx != nil
}

func get[T any](s *Session, fn func(context.Context, string) T, key string) T {
	var zero T
	if !s.live() {
		return zero
	}
	return fn(s.ctx, key)
}

func (s *Session) Get(key string) any            { return get(s, s.manager.Get, key) }
func (s *Session) GetString(key string) string   { return get(s, s.manager.GetString, key) }
func (s *Session) GetInt(key string) int         { return get(s, s.manager.GetInt, key) }
func (s *Session) GetBool(key string) bool       { return get(s, s.manager.GetBool, key) }
func (s *Session) GetFloat64(key string) float64 { return get(s, s.manager.GetFloat, key) }
func (s *Session) GetTime(key string) time.Time  { return get(s, s.manager.GetTime, key) }
func (s *Session) GetBytes(key string) []byte    { return get(s, s.manager.GetBytes, key) }
func (s *Session) Exists(key string) bool        { return get(s, s.manager.Exists, key) }
func (s *Session) Pop(key string) any            { return get(s, s.manager.Pop, key) }
func (s *Session) PopString(key string) string   { return get(s, s.manager.PopString, key) }
func (s *Session) PopInt(key string) int         { return get(s, s.manager.PopInt, key) }
func (s *Session) PopBool(key string) bool       { return get(s, s.manager.PopBool, key) }
func (s *Session) PopFloat64(key string) float64 { return get(s, s.manager.PopFloat, key) }
func (s *Session) PopTime(key string) time.Time  { return get(s, s.manager.PopTime, key) }
func (s *Session) PopBytes(key string) []byte    { return get(s, s.manager.PopBytes, key) }

// Set stores val under key.
func (s *Session) Set(key string, val any) {
	if s.live() {
		s.manager.Put(s.ctx, key, val)
	}
}

func (s *Session) Delete(key string) {
	if s.live() {
		s.manager.Remove(s.ctx, key)
	}
}

// Keys lists the stored keys, sorted.
func (s *Session) Keys() []string {
	if !s.live() {
		return nil
	}
	return s.manager.Keys(s.ctx)
}

// ID is the session token, the cookie value.
func (s *Session) ID() string {
	if !s.live() {
		return ""
	}
	return s.manager.Token(s.ctx)
}

// Clear removes all data but keeps the session.
func (s *Session) Clear() error {
	if !s.live() {
		return nil
	}
	return s.manager.Clear(s.ctx)
}

// Destroy ends the session, e.g. on logout.
func (s *Session) Destroy() error {
	if !s.live() {
		return nil
	}
	return s.manager.Destroy(s.ctx)
}

// RenewToken issues a new token for the same data. Call it after login.
func (s *Session) RenewToken() error {
	if !s.live() {
		return nil
	}
	return s.manager.RenewToken(s.ctx)
}
