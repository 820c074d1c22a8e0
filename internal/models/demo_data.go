package models

import "time"

// DemoTenantID is the fixed tenant every request resolves to when the
// backend is unconfigured.
const DemoTenantID = "demo-gym"

func strPtr(s string) *string { return &s }

var demoEpoch = time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)

// DemoMembers is the fixed dataset served by reads in demo mode and
// after masked query failures. Returned as a fresh copy so callers
// cannot mutate it.
func DemoMembers() []Member {
	reason := "Relocating to another city"
	cancelDate := "2024-02-20"
	return []Member{
		{
			ID:            "demo-member-1",
			GymID:         DemoTenantID,
			FullName:      "Priya Sharma",
			Email:         "priya.sharma@example.com",
			Phone:         "+91 98100 11223",
			Gender:        "Female",
			DateOfBirth:   strPtr("1992-06-14"),
			Status:        StatusActive,
			DateOfJoining: demoEpoch,
			PackageID:     strPtr("2"),
			PackageName:   strPtr("Premium Monthly"),
			Balance:       0,
			Rating:        5,
			CreatedAt:     demoEpoch,
			UpdatedAt:     demoEpoch,
		},
		{
			ID:                 "demo-member-2",
			GymID:              DemoTenantID,
			FullName:           "Marcus Webb",
			Email:              "marcus.webb@example.com",
			Phone:              "+1 555 0142",
			Gender:             "Male",
			DateOfBirth:        strPtr("1988-11-02"),
			Status:             StatusCancelled,
			DateOfJoining:      demoEpoch.AddDate(0, -3, 0),
			CancellationReason: &reason,
			CancellationDate:   &cancelDate,
			Balance:            45.50,
			Rating:             3,
			CreatedAt:          demoEpoch.AddDate(0, -3, 0),
			UpdatedAt:          demoEpoch,
		},
		{
			ID:            "demo-member-3",
			GymID:         DemoTenantID,
			FullName:      "Elena Petrova",
			Email:         "elena.petrova@example.com",
			Phone:         "+44 7700 900321",
			Gender:        "Female",
			Status:        StatusDormant,
			DateOfJoining: demoEpoch.AddDate(-1, 0, 0),
			PackageName:   strPtr("Basic Quarterly"),
			Balance:       -20,
			Rating:        4,
			CreatedAt:     demoEpoch.AddDate(-1, 0, 0),
			UpdatedAt:     demoEpoch.AddDate(0, -1, 0),
		},
	}
}

// DemoPayments backs /api/payments in demo mode.
func DemoPayments() []Payment {
	return []Payment{
		{
			ID:          "demo-payment-1",
			GymID:       DemoTenantID,
			MemberID:    "demo-member-1",
			Amount:      59.99,
			Method:      "card",
			Type:        PaymentTypePayment,
			Status:      PaymentStatusPaid,
			PaymentDate: demoEpoch,
			CreatedAt:   demoEpoch,
			MemberName:  "Priya Sharma",
			MemberEmail: "priya.sharma@example.com",
		},
		{
			ID:          "demo-payment-2",
			GymID:       DemoTenantID,
			MemberID:    "demo-member-2",
			Amount:      45.50,
			Method:      "cash",
			Type:        PaymentTypeCharge,
			Status:      PaymentStatusOverdue,
			PaymentDate: demoEpoch.AddDate(0, -1, 0),
			CreatedAt:   demoEpoch.AddDate(0, -1, 0),
			MemberName:  "Marcus Webb",
			MemberEmail: "marcus.webb@example.com",
		},
	}
}

// DemoPackages backs /api/packages in demo mode. The ids line up with
// what the member form suggests.
func DemoPackages() []Package {
	return []Package{
		{ID: "1", GymID: DemoTenantID, Name: "Basic Monthly", DurationDays: 30, Price: 29.99, CreatedAt: demoEpoch},
		{ID: "2", GymID: DemoTenantID, Name: "Premium Monthly", DurationDays: 30, Price: 59.99, CreatedAt: demoEpoch},
		{ID: "3", GymID: DemoTenantID, Name: "Basic Quarterly", DurationDays: 90, Price: 79.99, CreatedAt: demoEpoch},
	}
}

// DemoTrainers backs /api/trainers in demo mode.
func DemoTrainers() []Trainer {
	return []Trainer{
		{ID: "demo-trainer-1", GymID: DemoTenantID, FullName: "Jake Torres", Email: "jake.torres@example.com", Phone: "+1 555 0177", Specialization: strPtr("Strength"), Rating: 5, CreatedAt: demoEpoch},
		{ID: "demo-trainer-2", GymID: DemoTenantID, FullName: "Anita Rao", Email: "anita.rao@example.com", Phone: "+91 98100 44556", Specialization: strPtr("Yoga"), Rating: 4, CreatedAt: demoEpoch},
	}
}
