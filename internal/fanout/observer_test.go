package fanout_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/agbru/fanjoin/internal/fanout"
	"github.com/agbru/fanjoin/internal/fanout/mocks"
)

// TestRunner_ObserverSequence checks the two-phase shape through the
// observer: every spawn, in creation order, precedes the first join, and
// joins follow creation order too.
func TestRunner_ObserverSequence(t *testing.T) {
	const n = 5
	ctrl := gomock.NewController(t)
	obs := mocks.NewMockObserver(ctrl)

	calls := make([]*gomock.Call, 0, 2*n)
	for i := 0; i < n; i++ {
		calls = append(calls, obs.EXPECT().TaskSpawned(i).Times(1))
	}
	for i := 0; i < n; i++ {
		calls = append(calls, obs.EXPECT().TaskJoined(i, gomock.Any()).Times(1))
	}
	gomock.InOrder(calls...)

	for i := 0; i < n; i++ {
		// Finishing order is up to the scheduler, but each unit is announced
		// before it finishes and joined after.
		finished := obs.EXPECT().TaskFinished(i, gomock.Any()).
			After(calls[i]).
			Times(1)
		calls[n+i].After(finished)
	}

	r, err := fanout.NewRunner(fanout.Config{Tasks: n, Work: func(int) {}}, fanout.WithObserver(obs))
	if err != nil {
		t.Fatal(err)
	}
	r.Run(context.Background())
}

func TestRunner_ObserverNotCalledForEmptyRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	obs := mocks.NewMockObserver(ctrl)

	r, err := fanout.NewRunner(fanout.Config{Tasks: 0, Work: func(int) {}}, fanout.WithObserver(obs))
	if err != nil {
		t.Fatal(err)
	}
	r.Run(context.Background())
}

func TestNullObserver(t *testing.T) {
	var o fanout.Observer = fanout.NullObserver{}
	o.TaskSpawned(0)
	o.TaskFinished(0, 0)
	o.TaskJoined(0, 0)
}
