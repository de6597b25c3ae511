package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/testutil"
)

type RunnerSuite struct {
	suite.Suite
	fixture   *gameFixture
	scheduler *Scheduler
	runner    *Runner
	ctx       context.Context
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}

func (s *RunnerSuite) SetupTest() {
	s.fixture = newGameFixture()
	s.ctx = context.Background()

	s.Require().NoError(s.fixture.rulesService.Save(s.ctx, "en",
		testutil.Rules(5, 5, 7, model.Position{Row: 2, Col: 2})))
	s.Require().NoError(s.fixture.lexiconService.LoadText(s.ctx, "en", "CAT\n"))

	controller := s.fixture.controller(&stubFinder{})
	game, err := controller.NewGame(s.ctx, GameConfig{RulesName: "en", LexiconName: "en", Players: []string{"alice", "bob"}})
	s.Require().NoError(err)
	s.scheduler = controller.Schedule(game)
	s.Require().NoError(s.scheduler.Start())
	s.runner = NewRunner(s.scheduler, s.fixture.clock, testutil.NopLogger())
}

func (s *RunnerSuite) TestRunUntilGameOver() {
	ticks := make(chan time.Time, 2)
	ticks <- time.Time{}
	ticks <- time.Time{}

	s.NoError(s.runner.Run(s.ctx, ticks))
	s.True(s.scheduler.Game().IsOver())
}

func (s *RunnerSuite) TestRunStopsWhenTicksClose() {
	ticks := make(chan time.Time, 1)
	ticks <- time.Time{}
	close(ticks)

	s.NoError(s.runner.Run(s.ctx, ticks))
	s.Equal(1, s.scheduler.Snapshot().TurnNumber)
	s.False(s.scheduler.Game().IsOver())
}

func (s *RunnerSuite) TestRunReturnsOnCancel() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.ErrorIs(s.runner.Run(ctx, make(chan time.Time)), context.Canceled)
}

func (s *RunnerSuite) TestRunReturnsOnStop() {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.runner.Run(s.ctx, make(chan time.Time))
	}()

	s.scheduler.Stop()

	select {
	case err := <-errCh:
		s.NoError(err)
	case <-time.After(time.Second):
		s.Fail("runner did not return after stop")
	}
}

func (s *RunnerSuite) TestRunEveryUsesClockTicker() {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.runner.RunEvery(s.ctx, time.Second)
	}()

	s.Require().Eventually(func() bool {
		return len(s.fixture.clock.Tickers()) == 1
	}, time.Second, time.Millisecond)
	ticker := s.fixture.clock.Tickers()[0]
	ticker.Fire(time.Time{})
	ticker.Fire(time.Time{})

	select {
	case err := <-errCh:
		s.NoError(err)
	case <-time.After(time.Second):
		s.Fail("runner did not return after game over")
	}
	s.True(ticker.Stopped())
	s.True(s.scheduler.Game().IsOver())
}
