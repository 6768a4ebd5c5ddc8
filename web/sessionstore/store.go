// Package sessionstore implements a gin sessions.Store backed by the
// sessions table, so every session survives restarts and expires by row.
package sessionstore

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"net/http"
	"time"

	"github.com/MukulParasar/PRODIGY-FS-02/database"
	"github.com/MukulParasar/PRODIGY-FS-02/database/model"
	"github.com/MukulParasar/PRODIGY-FS-02/util/random"

	"github.com/gin-contrib/sessions"
	"github.com/gorilla/securecookie"
	gorillasessions "github.com/gorilla/sessions"
)

const defaultMaxAge = 3600 // 1 hour

// Store persists sessions as rows keyed by an opaque sid. The client cookie
// carries only the signed sid.
type Store struct {
	Codecs  []securecookie.Codec
	options *sessions.Options
}

// NewStore creates a database-backed session store signing cookies with the
// given key pairs.
func NewStore(keyPairs ...[]byte) *Store {
	return &Store{
		Codecs: securecookie.CodecsFromPairs(keyPairs...),
		options: &sessions.Options{
			Path:     "/",
			MaxAge:   defaultMaxAge,
			HttpOnly: true,
		},
	}
}

// Options sets the default cookie options for new sessions.
func (s *Store) Options(opts sessions.Options) {
	s.options = &opts
}

// Get returns a cached session for the request, loading it on first use.
func (s *Store) Get(r *http.Request, name string) (*gorillasessions.Session, error) {
	return gorillasessions.GetRegistry(r).Get(s, name)
}

// New creates a session, restoring state from the database when the request
// carries a valid, unexpired sid cookie.
func (s *Store) New(r *http.Request, name string) (*gorillasessions.Session, error) {
	session := gorillasessions.NewSession(s, name)
	session.Options = &gorillasessions.Options{
		Path:     s.options.Path,
		Domain:   s.options.Domain,
		MaxAge:   s.options.MaxAge,
		Secure:   s.options.Secure,
		HttpOnly: s.options.HttpOnly,
		SameSite: s.options.SameSite,
	}
	session.IsNew = true

	if c, errCookie := r.Cookie(name); errCookie == nil {
		err := securecookie.DecodeMulti(name, c.Value, &session.ID, s.Codecs...)
		if err == nil {
			if err = s.load(session); err == nil {
				session.IsNew = false
			}
			// on load failure fall through with a fresh session
		}
	}

	return session, nil
}

// Save writes the session row and the sid cookie. MaxAge < 0 deletes both.
func (s *Store) Save(r *http.Request, w http.ResponseWriter, session *gorillasessions.Session) error {
	if session.Options.MaxAge < 0 {
		if err := s.delete(session); err != nil {
			return err
		}
		http.SetCookie(w, s.newCookie(session, ""))
		return nil
	}

	if session.ID == "" {
		session.ID = random.Seq(32)
	}

	if err := s.save(session); err != nil {
		return err
	}

	encoded, err := securecookie.EncodeMulti(session.Name(), session.ID, s.Codecs...)
	if err != nil {
		return err
	}

	http.SetCookie(w, s.newCookie(session, encoded))
	return nil
}

func (s *Store) newCookie(session *gorillasessions.Session, value string) *http.Cookie {
	cookie := &http.Cookie{
		Name:     session.Name(),
		Value:    value,
		Path:     session.Options.Path,
		Domain:   session.Options.Domain,
		MaxAge:   session.Options.MaxAge,
		Secure:   session.Options.Secure,
		HttpOnly: session.Options.HttpOnly,
		SameSite: session.Options.SameSite,
	}
	if session.Options.MaxAge > 0 {
		cookie.Expires = time.Now().Add(time.Duration(session.Options.MaxAge) * time.Second)
	}
	return cookie
}

func (s *Store) save(session *gorillasessions.Session) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(session.Values); err != nil {
		return fmt.Errorf("failed to encode session values: %w", err)
	}

	maxAge := session.Options.MaxAge
	if maxAge <= 0 {
		maxAge = s.options.MaxAge
	}

	row := model.Session{
		Sid:     session.ID,
		Payload: buf.Bytes(),
		Expire:  time.Now().Add(time.Duration(maxAge) * time.Second),
	}
	db := database.GetDB()
	return db.Save(&row).Error
}

func (s *Store) load(session *gorillasessions.Session) error {
	db := database.GetDB()

	row := model.Session{}
	err := db.Where("sid = ?", session.ID).First(&row).Error
	if database.IsNotFound(err) {
		return fmt.Errorf("session not found")
	}
	if err != nil {
		return err
	}
	if !row.Expire.After(time.Now()) {
		return fmt.Errorf("session expired")
	}

	if err := gob.NewDecoder(bytes.NewBuffer(row.Payload)).Decode(&session.Values); err != nil {
		return fmt.Errorf("failed to decode session data: %w", err)
	}
	return nil
}

func (s *Store) delete(session *gorillasessions.Session) error {
	db := database.GetDB()
	return db.Delete(&model.Session{}, "sid = ?", session.ID).Error
}

// PurgeExpired deletes all session rows whose expiry has passed and returns
// how many were removed.
func PurgeExpired() (int64, error) {
	db := database.GetDB()
	result := db.Where("expire <= ?", time.Now()).Delete(&model.Session{})
	return result.RowsAffected, result.Error
}
