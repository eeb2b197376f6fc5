package cron

import (
	"Inkwell/internal/api/config"
	"Inkwell/internal/job"
	"Inkwell/internal/repository/memory"
	"Inkwell/internal/service"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJob() *job.LikeCountJob {
	store := memory.NewStore()
	return job.NewLikeCountJob(service.NewLikeService(store, store))
}

func TestRegisterJobsRejectsBadSpec(t *testing.T) {
	mgr := NewCronManager(config.CronConfig{LikeCountSync: "not a spec"}, newJob())
	assert.Error(t, mgr.RegisterJobs())
}

func TestInitCronStartStop(t *testing.T) {
	mgr := NewCronManager(config.CronConfig{LikeCountSync: "0 */1 * * * *"}, newJob())
	require.NoError(t, InitCron(mgr))
	mgr.Stop()
}
