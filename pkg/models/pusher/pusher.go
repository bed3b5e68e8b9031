package pusher

import (
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

// Pusher buffers messages and hands the batch to PushLogic once per
// PushInterval. Stop flushes whatever is still buffered.
type Pusher[T any] struct {
	MessagesBuffer []T
	PushLogic      func(...T) error
	PushInterval   time.Duration
	ErrorHandler   func(error)
	lock           sync.Mutex
	running        bool
}

func NewPusher[T any](options ...Option[T]) (newPusher *Pusher[T]) {
	newPusher = &Pusher[T]{
		running:      true,
		PushLogic:    func(...T) error { return nil },
		ErrorHandler: func(err error) { logx.Error(err) },
		PushInterval: time.Second,
	}

	for _, option := range options {
		option(newPusher)
	}

	return
}

func (p *Pusher[T]) PushAll() error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if len(p.MessagesBuffer) == 0 {
		return nil
	}

	if err := p.PushLogic(p.MessagesBuffer...); err != nil {
		return err
	}

	p.MessagesBuffer = nil
	return nil
}

func (p *Pusher[T]) AddMessages(messages ...T) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.MessagesBuffer = append(p.MessagesBuffer, messages...)
}

func (p *Pusher[T]) Start() {
	go func() {
		for p.running {
			timer := time.NewTimer(p.PushInterval)
			if err := p.PushAll(); err != nil {
				p.ErrorHandler(err)
			}
			<-timer.C
		}
	}()
}

// Stop ends the push loop and drains the buffer one last time.
func (p *Pusher[T]) Stop() {
	p.running = false
	if err := p.PushAll(); err != nil {
		p.ErrorHandler(err)
	}
}
