package background_tasks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodicTrigger(t *testing.T) {
	trigger := PeriodicTrigger{
		Interval: 20 * time.Millisecond,
	}
	trigger.Reset()
	assert.False(t, trigger.IsReady(), "PeriodicTrigger should not be ready immediately after reset")

	time.Sleep(40 * time.Millisecond)
	assert.True(t, trigger.IsReady(), "PeriodicTrigger should be ready after the interval")

	trigger.Reset()
	assert.False(t, trigger.IsReady(), "PeriodicTrigger should not be ready immediately after reset")
}

func TestPeriodicTriggerCron(t *testing.T) {
	trigger := PeriodicTrigger{CronExpr: "@every 1h"}
	trigger.Reset()
	assert.False(t, trigger.IsReady(), "cron trigger should wait for its next activation")

	trigger.lastTriggered = time.Now().Add(-2 * time.Hour)
	assert.True(t, trigger.IsReady(), "cron trigger should be ready once its activation passed")
}

func TestPeriodicTriggerWrongCron(t *testing.T) {
	trigger := PeriodicTrigger{
		Interval: 20 * time.Minute,
		CronExpr: "thewrongcron expression",
	}
	trigger.lastTriggered = time.Now().Add(-time.Minute)
	assert.False(t, trigger.IsReady(), "PeriodicTrigger with wrong CronExpr should never be ready")
}

func TestParseCron(t *testing.T) {
	schedule, err := ParseCron("0 3 * * *")
	require.NoError(t, err)

	from := time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 0, 0, 0, time.Local), schedule.Next(from))

	_, err = ParseCron("not a cron")
	assert.Error(t, err)
}

func TestEventTrigger(t *testing.T) {
	trigger := EventTrigger{Trigger: make(chan bool, 1)}
	assert.False(t, trigger.IsReady(), "EventTrigger should not be ready without an event")

	trigger.Trigger <- true
	assert.True(t, trigger.IsReady(), "EventTrigger should be ready after receiving an event")
	assert.False(t, trigger.IsReady(), "EventTrigger should consume the event")
}

func TestOneTimeTrigger(t *testing.T) {
	trigger := OneTimeTrigger{Delay: 20 * time.Millisecond}
	trigger.Reset()
	assert.False(t, trigger.IsReady())

	time.Sleep(40 * time.Millisecond)
	assert.True(t, trigger.IsReady(), "OneTimeTrigger should be ready after the delay")

	trigger.Reset()
	assert.False(t, trigger.IsReady(), "OneTimeTrigger should fire only once")
}
