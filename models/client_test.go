package models

import "testing"

func TestClientNewReservation(t *testing.T) {
	room := Room{RoomNumber: 101, Price: 500}
	room.ID = 1
	start, end := date("2030-01-01"), date("2030-01-04")

	t.Run("plain client books standard", func(t *testing.T) {
		client := Client{LastName: "Alaoui", FirstName: "Sara"}
		client.ID = 2

		res := client.NewReservation(room, start, end)
		if res.Kind != KindStandard {
			t.Fatalf("expected kind %s, got %s", KindStandard, res.Kind)
		}
		if res.Status != StatusPending {
			t.Fatalf("expected initial status %s, got %s", StatusPending, res.Status)
		}
		if res.DiscountRate != 0 {
			t.Fatalf("plain reservation must carry no discount, got %v", res.DiscountRate)
		}
		if res.ClientID != client.ID || res.RoomID != room.ID {
			t.Fatal("reservation must reference its client and room")
		}
	})

	t.Run("VIP client books online with own discount", func(t *testing.T) {
		client := Client{LastName: "Alaoui", FirstName: "Sara", VIP: true, DiscountRate: DefaultVIPDiscount}
		client.ID = 2

		res := client.NewReservation(room, start, end)
		if res.Kind != KindOnline {
			t.Fatalf("expected kind %s, got %s", KindOnline, res.Kind)
		}
		if res.DiscountRate != DefaultVIPDiscount {
			t.Fatalf("expected discount %v, got %v", DefaultVIPDiscount, res.DiscountRate)
		}
		if res.Platform != DefaultPlatform {
			t.Fatalf("expected platform %s, got %s", DefaultPlatform, res.Platform)
		}
	})
}

func TestClientDescribe(t *testing.T) {
	client := Client{LastName: "Alaoui", FirstName: "Sara", Email: "sara@example.com", Phone: "0600000000", VIP: true, DiscountRate: 0.15}
	client.ID = 2

	got := client.Describe()
	want := "Sara Alaoui (id=2) - sara@example.com - 0600000000 - VIP (15%)"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
