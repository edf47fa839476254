// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/vfg2006/market-analyzer-api/internal/analyzer"
	"github.com/vfg2006/market-analyzer-api/pkg/utils"
)

const (
	sessionIDSize      = 12
	maxIDGenerationTry = 5
)

var (
	ErrSessionNotFound = errors.New("sessão não encontrada")
	ErrSessionLimit    = errors.New("limite de sessões ativas atingido")
)

// SessionRepository guarda as sessões de análise em memória.
// Cada sessão é acessada por um único chamador por vez.
type SessionRepository interface {
	Create() (string, time.Time, error)
	WithSession(id string, fn func(session *analyzer.Session) error) error
	Replace(id string, session *analyzer.Session) error
	Delete(id string) bool
	DeleteIdleSince(cutoff time.Time) int
	Count() int
}

type sessionEntry struct {
	mu         sync.Mutex
	session    *analyzer.Session
	createdAt  time.Time
	lastAccess time.Time
}

type sessionRepository struct {
	mu          sync.RWMutex
	sessions    map[string]*sessionEntry
	maxSessions int
	options     []analyzer.Option
	now         func() time.Time
}

// NewSessionRepository cria o repositório; maxSessions <= 0 desativa o limite
func NewSessionRepository(maxSessions int, opts ...analyzer.Option) SessionRepository {
	return &sessionRepository{
		sessions:    make(map[string]*sessionEntry),
		maxSessions: maxSessions,
		options:     opts,
		now:         time.Now,
	}
}

func (r *sessionRepository) Create() (string, time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.maxSessions > 0 && len(r.sessions) >= r.maxSessions {
		return "", time.Time{}, ErrSessionLimit
	}

	id, err := r.newID()
	if err != nil {
		return "", time.Time{}, err
	}

	now := r.now()
	r.sessions[id] = &sessionEntry{
		session:    analyzer.NewSession(r.options...),
		createdAt:  now,
		lastAccess: now,
	}

	return id, now, nil
}

// WithSession executa fn com acesso exclusivo à sessão
func (r *sessionRepository) WithSession(id string, fn func(session *analyzer.Session) error) error {
	entry := r.get(id)
	if entry == nil {
		return ErrSessionNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.lastAccess = r.now()
	return fn(entry.session)
}

// Replace troca a sessão inteira, usado na importação de planilhas
func (r *sessionRepository) Replace(id string, session *analyzer.Session) error {
	entry := r.get(id)
	if entry == nil {
		return ErrSessionNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.session = session
	entry.lastAccess = r.now()
	return nil
}

func (r *sessionRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return false
	}

	delete(r.sessions, id)
	return true
}

// DeleteIdleSince remove as sessões sem acesso desde cutoff.
// Sessões em uso no momento são ignoradas.
func (r *sessionRepository) DeleteIdleSince(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, entry := range r.sessions {
		if !entry.mu.TryLock() {
			continue
		}
		idle := entry.lastAccess.Before(cutoff)
		entry.mu.Unlock()

		if idle {
			delete(r.sessions, id)
			removed++
		}
	}

	return removed
}

func (r *sessionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}

func (r *sessionRepository) get(id string) *sessionEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sessions[id]
}

func (r *sessionRepository) newID() (string, error) {
	for i := 0; i < maxIDGenerationTry; i++ {
		id, err := utils.GenerateIDWithSize(sessionIDSize)
		if err != nil {
			return "", fmt.Errorf("erro ao gerar id da sessão: %w", err)
		}
		if _, exists := r.sessions[id]; !exists {
			return id, nil
		}
	}

	return "", fmt.Errorf("erro ao gerar id da sessão: colisões consecutivas")
}
