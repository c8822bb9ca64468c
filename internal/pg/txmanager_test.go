package pg

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const insertQuery = `INSERT INTO cliente (nombre) VALUES ($1)`

func TestTXManager_Begin(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
	}{
		{
			name: "Commit on success",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(insertQuery)).
					WithArgs("Ana").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectCommit()
			},
			expectErr: false,
		},
		{
			name: "Rollback on error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(insertQuery)).
					WithArgs("Ana").
					WillReturnError(errors.New("database error"))
				mock.ExpectRollback()
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.mockSetup(mock)

			conn := New(mock)
			manager := NewTXManager(mock)
			err = manager.Begin(context.Background(), func(ctx context.Context) error {
				_, err := conn.Exec(ctx, insertQuery, "Ana")
				return err
			})

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTXManager_BeginFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	beginner := NewMockBeginner(ctrl)
	beginner.EXPECT().Begin(gomock.Any()).Return(nil, errors.New("connection refused"))

	called := false
	err := NewTXManager(beginner).Begin(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})

	assert.EqualError(t, err, "connection refused")
	assert.False(t, called)
}

func TestConn_WithoutTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta(insertQuery)).
		WithArgs("Ana").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	_, err = New(mock).Exec(context.Background(), insertQuery, "Ana")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
