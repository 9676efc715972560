package models

import "testing"

func TestRoomDescribe(t *testing.T) {
	room := Room{RoomNumber: 101, Price: 500, RoomType: RoomTypeSimple}
	room.ID = 1
	if got, want := room.Describe(), "Room 101 (id=1) - SIMPLE - 500.00 per night"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	suite := Room{RoomNumber: 201, Price: 1500, RoomType: RoomTypeSuite, SuiteName: "Royal", RoomCount: 3, Jacuzzi: true}
	suite.ID = 2
	if got, want := suite.Describe(), "Suite 201 (id=2) - Royal - 3 rooms - jacuzzi: yes - 1500.00 per night"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if !suite.IsSuite() {
		t.Fatal("expected suite kind")
	}
}
