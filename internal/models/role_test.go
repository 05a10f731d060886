package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_JSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Role
		wantErr bool
	}{
		{"ByName", `"Host"`, RoleHost, false},
		{"ByOrdinal", `1`, RoleHost, false},
		{"Member", `"Member"`, RoleMember, false},
		{"Admin", `2`, RoleAdmin, false},
		{"UnknownName", `"Owner"`, RoleMember, true},
		{"UnknownOrdinal", `9`, RoleMember, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Role
			err := json.Unmarshal([]byte(tt.input), &r)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, r)
		})
	}

	data, err := json.Marshal(RoleHost)
	assert.NoError(t, err)
	assert.Equal(t, `"Host"`, string(data))
}

func TestRole_ScanValue(t *testing.T) {
	v, err := RoleAdmin.Value()
	assert.NoError(t, err)
	assert.Equal(t, "Admin", v)

	var r Role
	assert.NoError(t, r.Scan([]byte("Host")))
	assert.Equal(t, RoleHost, r)
	assert.Error(t, r.Scan(42))

	_, err = Role(7).Value()
	assert.Error(t, err)
}

func TestEvent_ToDTO(t *testing.T) {
	e := Event{ID: 3, Title: "Conf", Location: "NYC", Price: 10, HostID: 9}
	dto := e.ToDTO()
	assert.Equal(t, int64(3), dto.ID)
	assert.Equal(t, "Conf", dto.Title)

	data, err := json.Marshal(dto)
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "hostId")

	assert.NotNil(t, ToEventDTOs(nil))
}
