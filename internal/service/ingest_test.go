package service

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"trendscope/internal/domain"
)

func (s *DetectionServiceTestSuite) TestRecordSnapshots() {
	ctx := context.Background()
	items := contentItems(3)
	items[0].Keywords = []string{"agents", "tooling"}

	s.snapshots.EXPECT().RecordBatch(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, snapshots []domain.HistoricalSnapshot) error {
			s.Len(snapshots, 3)
			s.Equal("ws-1", snapshots[0].WorkspaceID)
			s.Equal(int64(1), snapshots[0].ContentItemID)
			s.Equal(int64(2), snapshots[1].ContentItemID)
			s.Equal([]string{"agents", "tooling"}, snapshots[0].Keywords)
			s.Equal([]string{"agents", "story"}, snapshots[1].Keywords, "keywords derived from title when not precomputed")
			for _, snap := range snapshots {
				s.WithinDuration(snap.CapturedAt.AddDate(0, 0, 7), snap.ExpiresAt, time.Second)
			}
			return nil
		},
	)

	count, err := s.service.RecordSnapshots(ctx, "ws-1", items, 7)
	s.NoError(err)
	s.Equal(3, count)
}

func (s *DetectionServiceTestSuite) TestRecordSnapshots_Validation() {
	ctx := context.Background()

	_, err := s.service.RecordSnapshots(ctx, "", contentItems(1), 7)
	var vErr *domain.ValidationError
	s.ErrorAs(err, &vErr)

	_, err = s.service.RecordSnapshots(ctx, "ws-1", contentItems(1), 0)
	s.ErrorAs(err, &vErr)

	count, err := s.service.RecordSnapshots(ctx, "ws-1", nil, 7)
	s.NoError(err)
	s.Equal(0, count)
}

func (s *DetectionServiceTestSuite) TestRunScheduled() {
	ctx := context.Background()
	items := contentItems(5)

	// Detection pass over the configured window.
	s.content.EXPECT().
		ListItems(ctx, "ws-1", gomock.Any(), gomock.Any(), nil, 1000).
		Return(items, nil)
	s.extractor.EXPECT().Extract(items).Return(nil, nil)

	// Snapshot pass over the last day, then purge.
	s.content.EXPECT().
		ListItems(ctx, "ws-1", gomock.Any(), gomock.Any(), nil, 1000).
		Return(items, nil)
	s.snapshots.EXPECT().RecordBatch(ctx, gomock.Any()).Return(nil)
	s.snapshots.EXPECT().PurgeExpired(ctx, "ws-1").Return(int64(2), nil)

	summary, err := s.service.RunScheduled(ctx, "ws-1")
	s.NoError(err)
	s.Equal(0, summary.TrendsDetected)
}
