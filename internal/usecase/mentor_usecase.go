package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"careeriq/internal/ai"
	"careeriq/internal/domain/career"
	"careeriq/internal/observability"
	"careeriq/internal/prompt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrChatUnavailable = errors.New("Chat session could not be started.")
	ErrSessionNotFound = errors.New("chat session not found")
	ErrSessionBusy     = errors.New("a reply is still streaming for this session")
	ErrEmptyMessage    = errors.New("message must not be empty")
	ErrReplyFailed     = errors.New("mentor reply failed")
)

// ReplyFailureText replaces a reply whose stream broke.
const ReplyFailureText = "Sorry, I'm having trouble connecting. Please try again."

// MentorSession is one conversation with the provider. The provider chat keeps
// the history sent to the model; the transcript here is what the user sees.
type MentorSession struct {
	ID string
	// Owner is the id of the user who started the session. Only that user
	// can read or post to it.
	Owner string

	chat ai.ChatSession

	mu         sync.Mutex
	sending    bool
	transcript []career.ChatMessage
}

func (s *MentorSession) Transcript() []career.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]career.ChatMessage(nil), s.transcript...)
}

// Busy reports whether a reply is streaming right now.
func (s *MentorSession) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sending
}

func (s *MentorSession) append(m career.ChatMessage) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, m)
	return len(s.transcript) - 1
}

func (s *MentorSession) set(i int, m career.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript[i] = m
}

func (s *MentorSession) acquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sending {
		return false
	}
	s.sending = true
	return true
}

func (s *MentorSession) release() {
	s.mu.Lock()
	s.sending = false
	s.mu.Unlock()
}

// Mentor owns the registry of open mentor sessions. Sessions live until End.
type Mentor struct {
	model     ai.Model
	modelName string
	log       *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*MentorSession
}

func NewMentor(model ai.Model, modelName string, log *zap.Logger) *Mentor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Mentor{
		model:     model,
		modelName: modelName,
		log:       log,
		sessions:  map[string]*MentorSession{},
	}
}

// Start opens a provider chat with the mentor persona on behalf of owner and
// returns the new session together with the greeting shown before the first
// turn.
func (m *Mentor) Start(ctx context.Context, owner string) (*MentorSession, career.ChatMessage, error) {
	if m.model == nil {
		return nil, career.ChatMessage{}, ErrChatUnavailable
	}

	chat, err := m.model.StartChat(ctx, ai.ChatConfig{
		Model:             m.modelName,
		SystemInstruction: prompt.MentorSystemInstruction,
	})
	if err != nil {
		m.log.Error("start mentor chat", zap.Error(err))
		return nil, career.ChatMessage{}, ErrChatUnavailable
	}

	greeting := career.ChatMessage{
		ID:     uuid.NewString(),
		Text:   prompt.MentorGreeting,
		Sender: career.SenderAI,
	}
	sess := &MentorSession{
		ID:         uuid.NewString(),
		Owner:      owner,
		chat:       chat,
		transcript: []career.ChatMessage{greeting},
	}

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()
	observability.ChatSessionsActive.Inc()

	m.log.Info("mentor session started", zap.String("session_id", sess.ID), zap.String("owner", owner))
	return sess, greeting, nil
}

// Session looks up a session started by owner. A session that belongs to
// someone else is reported as not found.
func (m *Mentor) Session(owner, id string) (*MentorSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	if !ok || sess.Owner != owner {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// End forgets a session. The provider side needs no teardown.
func (m *Mentor) End(owner, id string) error {
	m.mu.Lock()
	sess, ok := m.sessions[id]
	ok = ok && sess.Owner == owner
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	observability.ChatSessionsActive.Dec()
	m.log.Info("mentor session ended", zap.String("session_id", id))
	return nil
}

// Send posts text to the session and streams the reply. onUpdate, when set,
// receives a snapshot of the AI message after every fragment with Streaming
// true, then once more with the final text and Streaming false. Fragments are
// concatenated in arrival order.
//
// If the stream fails the AI message text becomes ReplyFailureText, the final
// snapshot is still delivered, and ErrReplyFailed is returned.
func (m *Mentor) Send(ctx context.Context, owner, id, text string, onUpdate func(career.ChatMessage)) (career.ChatMessage, error) {
	if m.model == nil {
		return career.ChatMessage{}, ErrChatUnavailable
	}
	if strings.TrimSpace(text) == "" {
		return career.ChatMessage{}, ErrEmptyMessage
	}

	sess, err := m.Session(owner, id)
	if err != nil {
		return career.ChatMessage{}, err
	}
	if !sess.acquire() {
		return career.ChatMessage{}, ErrSessionBusy
	}
	defer sess.release()

	if onUpdate == nil {
		onUpdate = func(career.ChatMessage) {}
	}

	sess.append(career.ChatMessage{ID: uuid.NewString(), Text: text, Sender: career.SenderUser})
	reply := career.ChatMessage{ID: uuid.NewString(), Sender: career.SenderAI, Streaming: true}
	idx := sess.append(reply)

	stream := sess.chat.SendStream(ctx, text)
	defer stream.Close()

	var b strings.Builder
	for stream.Next() {
		b.WriteString(stream.Text())
		reply.Text = b.String()
		sess.set(idx, reply)
		onUpdate(reply)
	}

	reply.Streaming = false
	if err := stream.Err(); err != nil {
		m.log.Warn("mentor stream failed", zap.String("session_id", id), zap.Error(err))
		reply.Text = ReplyFailureText
		sess.set(idx, reply)
		onUpdate(reply)
		return reply, ErrReplyFailed
	}

	sess.set(idx, reply)
	onUpdate(reply)
	return reply, nil
}
