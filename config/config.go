// Package config loads the process-wide tunables this module's rooms and
// bots use: timer lengths, staged quick-game start delays, and bot
// think-time bounds. Values come from the process environment (optionally
// populated from a .env file via godotenv), falling back to the spec's
// defaults when unset.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Tunables holds every environment-overridable constant used outside a
// single room's RoomConfig (which is itself player-facing and voted on;
// these are process-level knobs an operator tunes).
type Tunables struct {
	// Quick-game staged start timer, keyed by player count (2, 3, 4+).
	QuickStartTimerTwoPlayers   time.Duration
	QuickStartTimerThreePlayers time.Duration
	QuickStartTimerFourPlayers  time.Duration

	SlapDownWindow time.Duration

	BotThinkMin      time.Duration
	BotThinkMax      time.Duration
	BotYanivThinkMin time.Duration
	BotYanivThinkMax time.Duration

	RoomCodeLength int
}

// Defaults returns the spec's built-in fallback values.
func Defaults() Tunables {
	return Tunables{
		QuickStartTimerTwoPlayers:   3 * time.Second,
		QuickStartTimerThreePlayers: 10 * time.Second,
		QuickStartTimerFourPlayers:  7 * time.Second,
		SlapDownWindow:              3 * time.Second,
		BotThinkMin:                 900 * time.Millisecond,
		BotThinkMax:                 1900 * time.Millisecond,
		BotYanivThinkMin:            500 * time.Millisecond,
		BotYanivThinkMax:            1100 * time.Millisecond,
		RoomCodeLength:              6,
	}
}

// Load reads a .env file if present (silently continuing if it isn't —
// operators may set real environment variables instead) then overlays any
// set environment variables onto the defaults.
func Load(log *logrus.Entry) Tunables {
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug("no .env file loaded, using process environment and defaults")
	}

	t := Defaults()
	t.QuickStartTimerTwoPlayers = durationEnv("YANIV_QUICK_START_2P", t.QuickStartTimerTwoPlayers, log)
	t.QuickStartTimerThreePlayers = durationEnv("YANIV_QUICK_START_3P", t.QuickStartTimerThreePlayers, log)
	t.QuickStartTimerFourPlayers = durationEnv("YANIV_QUICK_START_4P", t.QuickStartTimerFourPlayers, log)
	t.SlapDownWindow = durationEnv("YANIV_SLAP_DOWN_WINDOW", t.SlapDownWindow, log)
	t.BotThinkMin = durationEnv("YANIV_BOT_THINK_MIN", t.BotThinkMin, log)
	t.BotThinkMax = durationEnv("YANIV_BOT_THINK_MAX", t.BotThinkMax, log)
	t.BotYanivThinkMin = durationEnv("YANIV_BOT_YANIV_THINK_MIN", t.BotYanivThinkMin, log)
	t.BotYanivThinkMax = durationEnv("YANIV_BOT_YANIV_THINK_MAX", t.BotYanivThinkMax, log)
	t.RoomCodeLength = intEnv("YANIV_ROOM_CODE_LENGTH", t.RoomCodeLength, log)
	return t
}

func durationEnv(key string, fallback time.Duration, log *logrus.Entry) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	ms, err := strconv.Atoi(raw)
	if err != nil {
		log.WithField("env", key).WithError(err).Warn("invalid duration override, using default")
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}

func intEnv(key string, fallback int, log *logrus.Entry) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.WithField("env", key).WithError(err).Warn("invalid int override, using default")
		return fallback
	}
	return n
}
