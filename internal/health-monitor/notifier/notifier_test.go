package notifier

import (
	"VCS_Registry_Health/internal/health-monitor/model"
	"VCS_Registry_Health/pkg/mail"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMailNotifier_NotifyStatusChange(t *testing.T) {
	checkedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	recipients := []string{"ops@example.com"}

	testCases := []struct {
		name       string
		change     StatusChange
		setupMocks func(sender *mail.MockSender)
		expectErr  bool
	}{
		{
			name: "Success service went down",
			change: StatusChange{
				ServiceID:   "svc-1",
				ServiceName: "payments",
				From:        model.HealthStatusActive,
				To:          model.HealthStatusInactive,
				Message:     "Health check failed with status code 503",
				CheckedAt:   checkedAt,
			},
			setupMocks: func(sender *mail.MockSender) {
				sender.EXPECT().SendMail(recipients, "[health-monitor] service payments is INACTIVE", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ []string, _ string, htmlBody string, textBody string) error {
						assert.Contains(t, textBody, "Status: ACTIVE -> INACTIVE")
						assert.Contains(t, textBody, "2025-03-01T10:00:00Z")
						assert.Contains(t, htmlBody, "Health check failed with status code 503")
						return nil
					})
			},
		},
		{
			name: "Success variant recovered",
			change: StatusChange{
				ServiceID:   "svc-1",
				ServiceName: "payments",
				VariantID:   "var-1",
				VariantName: "staging",
				From:        model.HealthStatusInactive,
				To:          model.HealthStatusActive,
				CheckedAt:   checkedAt,
			},
			setupMocks: func(sender *mail.MockSender) {
				sender.EXPECT().SendMail(recipients, "[health-monitor] variant staging of service payments is ACTIVE", gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "Error sender fails",
			change: StatusChange{
				ServiceID:   "svc-1",
				ServiceName: "payments",
				From:        model.HealthStatusActive,
				To:          model.HealthStatusInactive,
				CheckedAt:   checkedAt,
			},
			setupMocks: func(sender *mail.MockSender) {
				sender.EXPECT().SendMail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp unavailable"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sender := mail.NewMockSender(ctrl)
			tc.setupMocks(sender)

			n := NewMailNotifier(sender, recipients)
			err := n.NotifyStatusChange(context.Background(), tc.change)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMailNotifier_EscapesHTML(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mail.NewMockSender(ctrl)
	sender.EXPECT().SendMail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ []string, _ string, htmlBody string, _ string) error {
			assert.NotContains(t, htmlBody, "<script>")
			assert.Contains(t, htmlBody, "&lt;script&gt;")
			return nil
		})

	n := NewMailNotifier(sender, []string{"ops@example.com"})
	err := n.NotifyStatusChange(context.Background(), StatusChange{
		ServiceName: "<script>",
		To:          model.HealthStatusInactive,
	})
	assert.NoError(t, err)
}

func TestNopNotifier(t *testing.T) {
	assert.NoError(t, NewNopNotifier().NotifyStatusChange(context.Background(), StatusChange{}))
}
