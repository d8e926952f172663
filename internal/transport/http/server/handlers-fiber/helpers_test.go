package handlers_fiber

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"club-transfer-ledger/internal/entities"
	"club-transfer-ledger/internal/jobs"
	"club-transfer-ledger/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWriteErrorStatusAndCode(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", fmt.Errorf("%w: p1", entities.ErrPlayerNotFound), http.StatusNotFound, "PlayerNotFound"},
		{"already registered", entities.ErrAlreadyRegistered, http.StatusConflict, "AlreadyRegistered"},
		{"insufficient budget", entities.ErrInsufficientBudget, http.StatusConflict, "InsufficientBudget"},
		{"unknown club", entities.ErrUnknownClub, http.StatusBadRequest, "UnknownClub"},
		{"invalid amount", entities.ErrInvalidAmount, http.StatusBadRequest, "InvalidAmount"},
		{"invalid duration", entities.ErrInvalidDuration, http.StatusBadRequest, "InvalidDuration"},
		{"invalid argument", entities.ErrInvalidArgument, http.StatusBadRequest, "InvalidArgument"},
		{"persistence", fmt.Errorf("%w: %w", entities.ErrPersistence, errors.New("disk")), http.StatusServiceUnavailable, "PersistenceFailure"},
		{"sweep in progress", jobs.ErrSweepInProgress, http.StatusConflict, "SweepInProgress"},
		{"internal", errors.New("boom"), http.StatusInternalServerError, "Internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{log: zap.NewNop().Sugar()}
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return h.writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.status, resp.StatusCode)

			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.code, body.Error.Code)
			if tt.code == "Internal" {
				require.Equal(t, "internal error", body.Error.Message)
			} else {
				require.Equal(t, tt.err.Error(), body.Error.Message)
			}
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"500000", 500000, false},
		{"0", 0, false},
		{"1e3", 1000, false},
		{"2.0", 2, false},
		{"1.5", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"99999999999999999999", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePrice(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, entities.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
