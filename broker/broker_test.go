package broker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testMsg string

func (m testMsg) Name() string { return string(m) }

func TestPublishFanOut(t *testing.T) {
	b := NewBroker()
	go b.Start()
	defer b.Stop()

	sub1 := b.Subscribe()
	sub2 := b.Subscribe()

	require.Eventually(t, func() bool {
		return b.SubCount() == 2
	}, time.Second, time.Millisecond)

	b.Publish(testMsg("windows"))

	for _, sub := range []chan Message{sub1, sub2} {
		select {
		case msg := <-sub:
			require.Equal(t, "windows", msg.Name())
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for message")
		}
	}
}

func TestUnsubscribe(t *testing.T) {
	b := NewBroker()
	go b.Start()
	defer b.Stop()

	sub := b.Subscribe()
	require.Eventually(t, func() bool {
		return b.SubCount() == 1
	}, time.Second, time.Millisecond)

	b.Unsubscribe(sub)
	require.Eventually(t, func() bool {
		return b.SubCount() == 0
	}, time.Second, time.Millisecond)
}
