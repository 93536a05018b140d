package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableID_ThreeStates(t *testing.T) {
	// Поле отсутствует: ссылку не трогаем.
	var payload UpdateEquipmentDTO
	require.NoError(t, json.Unmarshal([]byte(`{}`), &payload))
	assert.False(t, payload.LocationID.Present)

	// Пустая строка: ссылка очищается.
	require.NoError(t, json.Unmarshal([]byte(`{"location_id": ""}`), &payload))
	assert.True(t, payload.LocationID.Present)
	assert.Nil(t, payload.LocationID.ID)

	// null ведет себя как пустая строка.
	payload = UpdateEquipmentDTO{}
	require.NoError(t, json.Unmarshal([]byte(`{"location_id": null}`), &payload))
	assert.True(t, payload.LocationID.Present)
	assert.Nil(t, payload.LocationID.ID)

	// Число и строка с числом равнозначны.
	for _, body := range []string{`{"location_id": 5}`, `{"location_id": "5"}`} {
		payload = UpdateEquipmentDTO{}
		require.NoError(t, json.Unmarshal([]byte(body), &payload))
		require.True(t, payload.LocationID.Present)
		require.NotNil(t, payload.LocationID.ID)
		assert.Equal(t, uint64(5), *payload.LocationID.ID)
	}

	// Мусор дает ошибку, а не тихий ноль.
	payload = UpdateEquipmentDTO{}
	assert.Error(t, json.Unmarshal([]byte(`{"location_id": "abc"}`), &payload))
}

func TestFlexInt_AcceptsNumberAndString(t *testing.T) {
	var payload CreateEquipmentDTO
	require.NoError(t, json.Unmarshal([]byte(`{"brand":"b","model":"m","quantity": 3}`), &payload))
	assert.True(t, payload.Quantity.Present)
	assert.Equal(t, 3, payload.Quantity.Value)

	payload = CreateEquipmentDTO{}
	require.NoError(t, json.Unmarshal([]byte(`{"brand":"b","model":"m","quantity": "3"}`), &payload))
	assert.True(t, payload.Quantity.Present)
	assert.Equal(t, 3, payload.Quantity.Value)

	payload = CreateEquipmentDTO{}
	require.NoError(t, json.Unmarshal([]byte(`{"brand":"b","model":"m"}`), &payload))
	assert.False(t, payload.Quantity.Present)
}
