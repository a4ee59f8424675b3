package catalog

// ListingSeed is the minimal dataset a full listing is derived from. The
// unit inventory, rate cards and contract plans are generated from these
// numbers at catalog build time.
type ListingSeed struct {
	ID               string
	Title            string
	Location         string
	DailyPrice       float64
	HourlyRate       float64
	MonthlyPrice     float64
	TeamCapacity     int
	WeeklyDiscount   float64 // percent
	MonthlyDiscount  float64 // percent
	LongTermDiscount float64 // percent, contract display
	InstantBook      bool
	MinStayDays      int
	MaxStayDays      int
	Contract         bool
	ApprovalMode     string // "instant" or "manual"
	VerifiedHost     bool
	CrossBenefit     bool
	PartnerDiscount  float64 // percent
}

// DefaultSeeds returns the built-in marketplace dataset.
func DefaultSeeds() []ListingSeed {
	return []ListingSeed{
		{
			ID: "sys-001", Title: "TechHub Munich Central", Location: "Munich, Maxvorstadt",
			DailyPrice: 35, HourlyRate: 6, MonthlyPrice: 520, TeamCapacity: 24,
			WeeklyDiscount: 10, MonthlyDiscount: 20, LongTermDiscount: 25,
			InstantBook: true, MinStayDays: 1, MaxStayDays: 365,
			Contract: true, ApprovalMode: "instant",
			VerifiedHost: true, CrossBenefit: true, PartnerDiscount: 15,
		},
		{
			ID: "sys-002", Title: "Kreativloft Berlin Mitte", Location: "Berlin, Mitte",
			DailyPrice: 30, HourlyRate: 5, MonthlyPrice: 450, TeamCapacity: 16,
			WeeklyDiscount: 15, MonthlyDiscount: 25, LongTermDiscount: 30,
			InstantBook: true, MinStayDays: 1, MaxStayDays: 180,
			Contract: true, ApprovalMode: "manual",
			VerifiedHost: true, CrossBenefit: false, PartnerDiscount: 0,
		},
		{
			ID: "sys-003", Title: "Hafen Workspace Hamburg", Location: "Hamburg, HafenCity",
			DailyPrice: 28, MonthlyPrice: 420, TeamCapacity: 12,
			WeeklyDiscount: 10, MonthlyDiscount: 18,
			InstantBook: false, MinStayDays: 1, MaxStayDays: 90,
		},
		{
			ID: "sys-004", Title: "Rhein Offices Cologne", Location: "Cologne, Altstadt",
			DailyPrice: 26, HourlyRate: 4.5, MonthlyPrice: 390, TeamCapacity: 20,
			WeeklyDiscount: 12, MonthlyDiscount: 22, LongTermDiscount: 25,
			InstantBook: true, MinStayDays: 1, MaxStayDays: 365,
			Contract: true, ApprovalMode: "instant",
			VerifiedHost: false, CrossBenefit: true, PartnerDiscount: 10,
		},
		{
			ID: "sys-005", Title: "Main Tower Desks Frankfurt", Location: "Frankfurt, Innenstadt",
			DailyPrice: 42, HourlyRate: 8, MonthlyPrice: 640, TeamCapacity: 32,
			WeeklyDiscount: 8, MonthlyDiscount: 20, LongTermDiscount: 22,
			InstantBook: true, MinStayDays: 1, MaxStayDays: 365,
			Contract: true, ApprovalMode: "manual",
			VerifiedHost: true, CrossBenefit: true, PartnerDiscount: 20,
		},
		{
			ID: "sys-006", Title: "Neckar Studio Stuttgart", Location: "Stuttgart, West",
			DailyPrice: 24, MonthlyPrice: 360, TeamCapacity: 8,
			WeeklyDiscount: 10, MonthlyDiscount: 15,
			InstantBook: false, MinStayDays: 2, MaxStayDays: 60,
		},
		{
			ID: "sys-007", Title: "Isar Collective", Location: "Munich, Glockenbachviertel",
			DailyPrice: 32, HourlyRate: 5.5, MonthlyPrice: 480, TeamCapacity: 14,
			WeeklyDiscount: 12, MonthlyDiscount: 20, LongTermDiscount: 28,
			InstantBook: true, MinStayDays: 1, MaxStayDays: 180,
			Contract: true, ApprovalMode: "instant",
			VerifiedHost: true, CrossBenefit: false, PartnerDiscount: 0,
		},
		{
			ID: "sys-008", Title: "Elbe Quartier Lab", Location: "Dresden, Neustadt",
			DailyPrice: 20, MonthlyPrice: 300, TeamCapacity: 10,
			WeeklyDiscount: 10, MonthlyDiscount: 18,
			InstantBook: true, MinStayDays: 1, MaxStayDays: 120,
		},
	}
}
