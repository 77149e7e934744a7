package usecase

import (
	"context"
	"errors"
	"testing"

	"careeriq/internal/ai/aitest"
	"careeriq/internal/domain/career"
	"careeriq/internal/prompt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const owner = "4b7a3f0e-9c1d-4e58-a2b6-0f3c9d8e7a21"

func TestMentor_StartUnavailable(t *testing.T) {
	_, _, err := NewMentor(nil, "flash", nil).Start(context.Background(), owner)
	assert.ErrorIs(t, err, ErrChatUnavailable)
	assert.Equal(t, "Chat session could not be started.", err.Error())

	m := NewMentor(&aitest.Model{StartErr: errors.New("quota")}, "flash", nil)
	_, _, err = m.Start(context.Background(), owner)
	assert.ErrorIs(t, err, ErrChatUnavailable)

	_, err = NewMentor(nil, "flash", nil).Send(context.Background(), owner, "any", "hi", nil)
	assert.ErrorIs(t, err, ErrChatUnavailable)
}

func TestMentor_StartUsesPersonaAndGreets(t *testing.T) {
	fake := &aitest.Model{}
	m := NewMentor(fake, "flash", nil)

	sess, greeting, err := m.Start(context.Background(), owner)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.End(owner, sess.ID) })

	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, owner, sess.Owner)
	assert.Equal(t, prompt.MentorGreeting, greeting.Text)
	assert.Equal(t, career.SenderAI, greeting.Sender)
	assert.Equal(t, []career.ChatMessage{greeting}, sess.Transcript())

	cfgs := fake.ChatConfigs()
	require.Len(t, cfgs, 1)
	assert.Equal(t, "flash", cfgs[0].Model)
	assert.Equal(t, prompt.MentorSystemInstruction, cfgs[0].SystemInstruction)
}

func TestMentor_SendStreamsFragmentsInOrder(t *testing.T) {
	fake := &aitest.Model{Chat: &aitest.Chat{Turns: [][]string{{"Hel", "lo, ", "world"}}}}
	m := NewMentor(fake, "flash", nil)
	sess, _, err := m.Start(context.Background(), owner)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.End(owner, sess.ID) })

	var updates []career.ChatMessage
	final, err := m.Send(context.Background(), owner, sess.ID, "How do I become a PM?", func(msg career.ChatMessage) {
		updates = append(updates, msg)
	})
	require.NoError(t, err)

	require.Len(t, updates, 4)
	assert.Equal(t, "Hel", updates[0].Text)
	assert.Equal(t, "Hello, ", updates[1].Text)
	assert.Equal(t, "Hello, world", updates[2].Text)
	for _, u := range updates[:3] {
		assert.True(t, u.Streaming)
		assert.Equal(t, career.SenderAI, u.Sender)
		assert.Equal(t, final.ID, u.ID)
	}
	assert.False(t, updates[3].Streaming)
	assert.Equal(t, "Hello, world", final.Text)
	assert.False(t, final.Streaming)

	tr := sess.Transcript()
	require.Len(t, tr, 3)
	assert.Equal(t, career.SenderUser, tr[1].Sender)
	assert.Equal(t, "How do I become a PM?", tr[1].Text)
	assert.Equal(t, final, tr[2])
	assert.Equal(t, []string{"How do I become a PM?"}, fake.Chat.Messages())
}

func TestMentor_SendFailureShowsApology(t *testing.T) {
	fake := &aitest.Model{Chat: &aitest.Chat{Turns: [][]string{{"Par"}}, Err: errors.New("connection reset")}}
	m := NewMentor(fake, "flash", nil)
	sess, _, err := m.Start(context.Background(), owner)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.End(owner, sess.ID) })

	var last career.ChatMessage
	final, err := m.Send(context.Background(), owner, sess.ID, "hi", func(msg career.ChatMessage) { last = msg })
	assert.ErrorIs(t, err, ErrReplyFailed)
	assert.Equal(t, ReplyFailureText, final.Text)
	assert.False(t, final.Streaming)
	assert.Equal(t, final, last)
	assert.Equal(t, final, sess.Transcript()[2])
}

func TestMentor_OneSendAtATime(t *testing.T) {
	gate := make(chan struct{})
	started := make(chan struct{}, 1)
	fake := &aitest.Model{Chat: &aitest.Chat{
		Turns:   [][]string{{"first"}},
		Gate:    gate,
		Started: started,
	}}
	m := NewMentor(fake, "flash", nil)
	sess, _, err := m.Start(context.Background(), owner)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.End(owner, sess.ID) })

	done := make(chan error, 1)
	go func() {
		_, err := m.Send(context.Background(), owner, sess.ID, "one", nil)
		done <- err
	}()
	<-started

	_, err = m.Send(context.Background(), owner, sess.ID, "two", nil)
	assert.ErrorIs(t, err, ErrSessionBusy)

	close(gate)
	require.NoError(t, <-done)
	assert.Equal(t, []string{"one"}, fake.Chat.Messages())
}

func TestMentor_CancelledSendFails(t *testing.T) {
	gate := make(chan struct{})
	started := make(chan struct{}, 1)
	fake := &aitest.Model{Chat: &aitest.Chat{Turns: [][]string{{"never"}}, Gate: gate, Started: started}}
	m := NewMentor(fake, "flash", nil)
	sess, _, err := m.Start(context.Background(), owner)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.End(owner, sess.ID) })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan career.ChatMessage, 1)
	go func() {
		msg, _ := m.Send(ctx, owner, sess.ID, "hi", nil)
		done <- msg
	}()
	<-started
	cancel()

	msg := <-done
	assert.Equal(t, ReplyFailureText, msg.Text)
}

func TestMentor_Sessions(t *testing.T) {
	fake := &aitest.Model{Chat: &aitest.Chat{Turns: [][]string{{"a"}, {"b"}}}}
	m := NewMentor(fake, "flash", nil)
	ctx := context.Background()

	sess, _, err := m.Start(ctx, owner)
	require.NoError(t, err)

	_, err = m.Send(ctx, owner, sess.ID, "   ", nil)
	assert.ErrorIs(t, err, ErrEmptyMessage)
	_, err = m.Send(ctx, owner, "missing", "hi", nil)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	first, err := m.Send(ctx, owner, sess.ID, "q1", nil)
	require.NoError(t, err)
	second, err := m.Send(ctx, owner, sess.ID, "q2", nil)
	require.NoError(t, err)
	assert.Equal(t, "a", first.Text)
	assert.Equal(t, "b", second.Text)
	assert.Len(t, sess.Transcript(), 5)

	require.NoError(t, m.End(owner, sess.ID))
	assert.ErrorIs(t, m.End(owner, sess.ID), ErrSessionNotFound)
	_, err = m.Send(ctx, owner, sess.ID, "q3", nil)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMentor_SessionsAreScopedToOwner(t *testing.T) {
	fake := &aitest.Model{Chat: &aitest.Chat{Turns: [][]string{{"mine"}}}}
	m := NewMentor(fake, "flash", nil)
	ctx := context.Background()
	const stranger = "other-user"

	sess, _, err := m.Start(ctx, owner)
	require.NoError(t, err)

	_, err = m.Session(stranger, sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = m.Send(ctx, stranger, sess.ID, "let me in", nil)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, m.End(stranger, sess.ID), ErrSessionNotFound)
	assert.Empty(t, fake.Chat.Messages())

	got, err := m.Session(owner, sess.ID)
	require.NoError(t, err)
	assert.Len(t, got.Transcript(), 1)

	reply, err := m.Send(ctx, owner, sess.ID, "hi", nil)
	require.NoError(t, err)
	assert.Equal(t, "mine", reply.Text)
	require.NoError(t, m.End(owner, sess.ID))
}
