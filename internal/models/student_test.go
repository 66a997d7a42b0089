package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDerivedUsername(t *testing.T) {
	cases := []struct {
		name    string
		student Student
		want    string
	}{
		{"plain", Student{FirstName: "Ana", LastName: "Gomez"}, "agomez"},
		{"uppercase last name", Student{FirstName: "Luis", LastName: "PEREZ"}, "lperez"},
		{"padded names", Student{FirstName: "  Ana ", LastName: " Gomez "}, "agomez"},
		{"accented initial", Student{FirstName: "Ángel", LastName: "Diaz"}, "ádiaz"},
		{"empty first name", Student{FirstName: "", LastName: "Gomez"}, "gomez"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.student.DerivedUsername())
		})
	}
}

func TestFullName(t *testing.T) {
	s := Student{FirstName: "Ana", LastName: "Gomez"}
	require.Equal(t, "Ana Gomez", s.FullName())
}

func TestSessionIdentityRole(t *testing.T) {
	require.Equal(t, RoleAdmin, SessionIdentity{IsAdmin: true}.Role())
	require.Equal(t, RoleStudent, SessionIdentity{}.Role())
}

func TestSlotStates(t *testing.T) {
	open := Slot{Available: true}
	require.True(t, open.IsOpen())
	require.False(t, open.IsReserved())
	require.False(t, open.IsFlown())

	reserved := Slot{Available: false, Student: "Ana Gomez"}
	require.False(t, reserved.IsOpen())
	require.True(t, reserved.IsReserved())
	require.False(t, reserved.IsFlown())

	hours := 2.5
	flown := Slot{Available: false, Student: "Ana Gomez", Flown: true, FlownHours: &hours}
	require.False(t, flown.IsOpen())
	require.False(t, flown.IsReserved())
	require.True(t, flown.IsFlown())
}
