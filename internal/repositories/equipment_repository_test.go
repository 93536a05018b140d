package repositories

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-system/internal/entities"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/database/postgresql"
	apperrors "inventory-system/pkg/errors"
)

var testPool *pgxpool.Pool

// TestMain поднимает тестовую БД. Без TEST_DATABASE_URL интеграционные
// тесты пропускаются, юнит-тесты пакета это не задевает.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn != "" {
		if err := postgresql.Migrate(dsn); err != nil {
			log.Fatalf("Не удалось применить миграции к тестовой БД: %v", err)
		}
		var err error
		testPool, err = pgxpool.New(context.Background(), dsn)
		if err != nil {
			log.Fatalf("Не удалось подключиться к тестовой БД: %v", err)
		}
		defer testPool.Close()
	}

	os.Exit(m.Run())
}

func requireDB(t *testing.T) {
	t.Helper()
	if testPool == nil {
		t.Skip("TEST_DATABASE_URL не задан, пропускаем интеграционный тест")
	}
}

func cleanupTables(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE TABLE equipment_logs, equipment, attachments, equipment_types, categories, locations, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err, "не удалось очистить таблицы")
}

func seedUser(t *testing.T) uint64 {
	t.Helper()
	var id uint64
	err := testPool.QueryRow(context.Background(),
		"INSERT INTO users (username, password_hash, role) VALUES ('tester', 'x', 'admin') RETURNING id").Scan(&id)
	require.NoError(t, err)
	return id
}

func inTx(t *testing.T, fn func(tx pgx.Tx) error) {
	t.Helper()
	require.NoError(t, WithTx(context.Background(), testPool, fn))
}

func TestEquipmentRepository_CreateAndFind(t *testing.T) {
	requireDB(t)
	cleanupTables(t)

	repo := NewEquipmentRepository(testPool)
	ctx := context.Background()

	equipment := &entities.Equipment{
		Type:         "Mikrofon",
		Brand:        "Shure",
		Model:        "SM58",
		SerialNumber: null.StringFrom("SN-001"),
		Status:       constants.StatusAvailable,
		Quantity:     2,
		Location:     "Lager",
	}

	var id uint64
	inTx(t, func(tx pgx.Tx) error {
		var err error
		id, err = repo.CreateEquipmentInTx(ctx, tx, equipment)
		return err
	})
	require.NotZero(t, id)

	found, err := repo.FindEquipment(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Shure", found.Brand)
	assert.Equal(t, "SN-001", found.SerialNumber.String)
	assert.Equal(t, 2, found.Quantity)
	assert.NotNil(t, found.CreatedAt)
}

func TestEquipmentRepository_DuplicateSerial(t *testing.T) {
	requireDB(t)
	cleanupTables(t)

	repo := NewEquipmentRepository(testPool)
	ctx := context.Background()

	first := &entities.Equipment{Brand: "Shure", Model: "SM58", SerialNumber: null.StringFrom("DUP"), Status: constants.StatusAvailable, Quantity: 1}
	inTx(t, func(tx pgx.Tx) error {
		_, err := repo.CreateEquipmentInTx(ctx, tx, first)
		return err
	})

	second := &entities.Equipment{Brand: "Shure", Model: "SM57", SerialNumber: null.StringFrom("DUP"), Status: constants.StatusAvailable, Quantity: 1}
	err := WithTx(ctx, testPool, func(tx pgx.Tx) error {
		_, err := repo.CreateEquipmentInTx(ctx, tx, second)
		return err
	})
	require.Error(t, err)
	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestEquipmentRepository_NotFound(t *testing.T) {
	requireDB(t)
	cleanupTables(t)

	repo := NewEquipmentRepository(testPool)
	ctx := context.Background()

	_, err := repo.FindEquipment(ctx, 9999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = WithTx(ctx, testPool, func(tx pgx.Tx) error {
		return repo.DeleteEquipmentInTx(ctx, tx, 9999)
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestEquipmentLogRepository_AppendAndRead(t *testing.T) {
	requireDB(t)
	cleanupTables(t)

	userID := seedUser(t)
	repo := NewEquipmentLogRepository(testPool)
	ctx := context.Background()

	entries := []entities.EquipmentLog{
		{EquipmentID: 1, UserID: userID, ActionType: constants.ActionCreated, Details: "Equipment created with serial number: SN-001"},
		{EquipmentID: 1, UserID: userID, ActionType: constants.ActionStatusChange,
			PreviousStatus: null.StringFrom(constants.StatusAvailable),
			NewStatus:      null.StringFrom(constants.StatusInUse),
			Details:        `Status changed from "available" to "in-use"`},
		{EquipmentID: 2, UserID: userID, ActionType: constants.ActionCreated, Details: "Equipment created with serial number: SN-002"},
	}
	for i := range entries {
		inTx(t, func(tx pgx.Tx) error {
			return repo.CreateInTx(ctx, tx, &entries[i])
		})
	}

	items, total, err := repo.FindByEquipmentID(ctx, 1, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)
	require.Len(t, items, 2)
	// Свежие записи первыми.
	assert.Equal(t, constants.ActionStatusChange, items[0].ActionType)
	assert.Equal(t, constants.ActionCreated, items[1].ActionType)
	assert.Equal(t, "tester", items[0].Username.String)
}
