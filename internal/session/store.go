// Package session porte l'état de connexion côté passerelle : au plus un
// utilisateur en cache par session navigateur, persisté dans Redis sous un
// espace de noms fixe, avec un cycle de vie explicite (Login / Refresh /
// SetUser / Clear). Les drapeaux loading/erreur restent en mémoire, jamais
// persistés.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"

	"rate_front_end/internal/backend"
	"rate_front_end/internal/models"
)

const (
	CookieName = "ratefront_session"
	keyPrefix  = "ratefront:session:"
	RecordTTL  = 30 * 24 * time.Hour
)

// Record est ce qui survit aux rechargements : le token backend et la
// copie du profil. Remplacé en bloc, jamais modifié champ par champ.
type Record struct {
	AccessToken string       `json:"accessToken"`
	User        *models.User `json:"user"`
}

// Persistence stocke les records de session par sid
type Persistence interface {
	Load(ctx context.Context, sid string) (*Record, error)
	Save(ctx context.Context, sid string, rec *Record) error
	Delete(ctx context.Context, sid string) error
}

// RedisPersistence est l'implémentation de production
type RedisPersistence struct {
	rdb *redis.Client
}

func NewRedisPersistence(rdb *redis.Client) *RedisPersistence {
	return &RedisPersistence{rdb: rdb}
}

func (p *RedisPersistence) Load(ctx context.Context, sid string) (*Record, error) {
	data, err := p.rdb.Get(ctx, keyPrefix+sid).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, fmt.Errorf("session corrompue: %w", err)
	}
	return &rec, nil
}

func (p *RedisPersistence) Save(ctx context.Context, sid string, rec *Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return p.rdb.Set(ctx, keyPrefix+sid, data, RecordTTL).Err()
}

func (p *RedisPersistence) Delete(ctx context.Context, sid string) error {
	return p.rdb.Del(ctx, keyPrefix+sid).Err()
}

// ProfileFetcher est la seule capacité backend dont le store a besoin
type ProfileFetcher interface {
	GetProfile(ctx context.Context, token string) (*models.User, error)
}

type flags struct {
	loading bool
	err     string
}

// Store est injecté dans les handlers — pas de singleton importable
type Store struct {
	cookies  *sessions.CookieStore
	persist  Persistence
	profiles ProfileFetcher

	mu     sync.Mutex
	states map[string]*flags
}

func New(secret []byte, persist Persistence, profiles ProfileFetcher) *Store {
	cs := sessions.NewCookieStore(secret)
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{
		cookies:  cs,
		persist:  persist,
		profiles: profiles,
		states:   make(map[string]*flags),
	}
}

// SID retourne l'identifiant de session porté par le cookie, vide si aucun
func (s *Store) SID(r *http.Request) string {
	sess, _ := s.cookies.Get(r, CookieName)
	if sid, ok := sess.Values["sid"].(string); ok {
		return sid
	}
	return ""
}

// Current retourne le record de la session courante, nil si déconnecté
func (s *Store) Current(ctx context.Context, r *http.Request) (*Record, error) {
	sid := s.SID(r)
	if sid == "" {
		return nil, nil
	}
	return s.persist.Load(ctx, sid)
}

// Login ouvre une session : nouveau sid, record persisté, cookie posé
func (s *Store) Login(ctx context.Context, w http.ResponseWriter, r *http.Request, token string, user *models.User) error {
	sid := uuid.NewString()
	if err := s.persist.Save(ctx, sid, &Record{AccessToken: token, User: user}); err != nil {
		return err
	}
	sess, _ := s.cookies.Get(r, CookieName)
	sess.Values["sid"] = sid
	return sess.Save(r, w)
}

// Refresh recharge le profil depuis le backend. Échec silencieux : l'erreur
// est rangée dans le drapeau de la session, jamais remontée à l'appelant.
// Un 401 backend vide la session (token mort).
func (s *Store) Refresh(ctx context.Context, w http.ResponseWriter, r *http.Request) *models.User {
	sid := s.SID(r)
	if sid == "" {
		return nil
	}
	s.setFlags(sid, true, "")

	rec, err := s.persist.Load(ctx, sid)
	if err != nil || rec == nil {
		s.setFlags(sid, false, "session introuvable")
		return nil
	}

	user, err := s.profiles.GetProfile(ctx, rec.AccessToken)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			s.Clear(ctx, w, r)
			s.setFlags(sid, false, "")
			return nil
		}
		s.setFlags(sid, false, err.Error())
		return nil
	}

	rec.User = user
	if err := s.persist.Save(ctx, sid, rec); err != nil {
		s.setFlags(sid, false, err.Error())
		return user
	}
	s.setFlags(sid, false, "")
	return user
}

// SetUser écrase la copie du profil (après édition du profil)
func (s *Store) SetUser(ctx context.Context, r *http.Request, user *models.User) error {
	sid := s.SID(r)
	if sid == "" {
		return errors.New("aucune session active")
	}
	rec, err := s.persist.Load(ctx, sid)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("session expirée")
	}
	rec.User = user
	return s.persist.Save(ctx, sid, rec)
}

// Clear ferme la session : record supprimé, cookie expiré
func (s *Store) Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	sid := s.SID(r)
	if sid == "" {
		return nil
	}
	if err := s.persist.Delete(ctx, sid); err != nil {
		return err
	}
	sess, _ := s.cookies.Get(r, CookieName)
	sess.Options.MaxAge = -1
	delete(sess.Values, "sid")
	if w != nil {
		return sess.Save(r, w)
	}
	return nil
}

// LastError retourne le drapeau d'erreur en mémoire de la session (vide si aucun)
func (s *Store) LastError(sid string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.states[sid]; ok {
		return st.err
	}
	return ""
}

// Loading indique si un Refresh est en cours pour la session
func (s *Store) Loading(sid string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.states[sid]; ok {
		return st.loading
	}
	return false
}

func (s *Store) setFlags(sid string, loading bool, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[sid] = &flags{loading: loading, err: errMsg}
}
