// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"context"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
)

// CheckLimitRateAndAbortRequest reports whether the remaining GitHub quota
// is down to the configured reserve. A failed lookup does not abort.
func (s *Server) CheckLimitRateAndAbortRequest(ctx context.Context) bool {
	if s.GithubClient.client == nil {
		return false
	}

	limits, _, err := s.GithubClient.RateLimits(ctx)
	if err != nil {
		mlog.Error("Error getting the rate limit", mlog.Err(err))
		return false
	}

	core := limits.GetCore()
	mlog.Debug("Current rate limit", mlog.Int("Remaining Rate", core.Remaining), mlog.Int("Limit Rate", core.Limit))
	if core.Remaining <= s.Config.GitHubTokenReserve {
		mlog.Warn("Tokens reached minimum reserve, request will be aborted",
			mlog.Int("reserve", s.Config.GitHubTokenReserve),
			mlog.Any("reset", core.Reset.Time))
		return true
	}
	return false
}
