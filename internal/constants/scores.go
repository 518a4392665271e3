package constants

import (
	"time"
)

// FollowScore tracks the health of a remote instance we follow. Each
// successful delivery adds Bonus, each failure adds Penalty, and an
// instance starting at Base is unfollowed when its score reaches zero.
type FollowScore struct {
	Base    int
	Bonus   int
	Penalty int
	Max     int
}

func buildFollowScore(test bool) FollowScore {
	s := FollowScore{
		Base:    50,
		Bonus:   10,
		Penalty: -10,
		Max:     1000,
	}

	// fewer deliveries are needed to exercise unfollow in test runs
	if test {
		s.Base = 20
	}

	return s
}

// ActorFollowScore is the follow scoring table of this instance.
var ActorFollowScore = buildFollowScore(testMode) //nolint:gochecknoglobals

// RateLimit bounds the number of requests accepted inside a rolling window.
type RateLimit struct {
	Window time.Duration
	Max    int
}

// RateLimits per surface, keyed by the name the HTTP layer uses.
var RateLimits = map[string]RateLimit{ //nolint:gochecknoglobals
	"api":                {Window: 10 * time.Second, Max: 50},
	"login":              {Window: 5 * time.Minute, Max: 15},
	"signup":             {Window: 5 * time.Minute, Max: 2},
	"ask_send_email":     {Window: 5 * time.Minute, Max: 3},
	"receive_client_log": {Window: 1 * time.Minute, Max: 10},
}

// Schedules holds the polling intervals of the background schedulers.
// The schedulers themselves live outside this service; they read these
// values as configuration input.
type Schedules struct {
	ActorFollowScores time.Duration
	RemoveOldJobs     time.Duration
	UpdateVideos      time.Duration
	YoutubeDLUpdate   time.Duration
	CheckPlugins      time.Duration
	RemoveOldHistory  time.Duration
}

func buildSchedules(test bool) Schedules {
	if test {
		// spin fast so integration suites observe scheduler effects
		return Schedules{
			ActorFollowScores: time.Second,
			RemoveOldJobs:     10 * time.Second,
			UpdateVideos:      5 * time.Second,
			YoutubeDLUpdate:   time.Hour,
			CheckPlugins:      10 * time.Second,
			RemoveOldHistory:  5 * time.Second,
		}
	}

	return Schedules{
		ActorFollowScores: time.Hour,
		RemoveOldJobs:     time.Hour,
		UpdateVideos:      time.Minute,
		YoutubeDLUpdate:   24 * time.Hour,
		CheckPlugins:      24 * time.Hour,
		RemoveOldHistory:  24 * time.Hour,
	}
}

// SchedulerIntervals is the polling interval table of this instance.
var SchedulerIntervals = buildSchedules(testMode) //nolint:gochecknoglobals
