package employee

// profile is the static part of a roster entry; histories are generated.
type profile struct {
	Name             string
	Email            string
	Phone            string
	Role             string
	Department       string
	JoinDate         string
	Status           Status
	Address          string
	EmergencyContact string
	Salary           float64
}

// sampleProfiles seed the start of every roster so a default dashboard always
// shows one employee on leave and one inactive.
var sampleProfiles = []profile{
	{
		Name: "Sarah Johnson", Email: "sarah.johnson@example.com", Phone: "(555) 123-4567",
		Role: "Store Manager", Department: "Management", JoinDate: "2022-01-15", Status: StatusActive,
		Address: "123 Main St, City, State", EmergencyContact: "John Johnson (Husband) - (555) 765-4321",
		Salary: 62000,
	},
	{
		Name: "Michael Chen", Email: "michael.chen@example.com", Phone: "(555) 987-6543",
		Role: "Sales Associate", Department: "Sales", JoinDate: "2022-03-10", Status: StatusActive,
		Address: "456 Oak Ave, City, State", EmergencyContact: "Lisa Chen (Wife) - (555) 876-5432",
		Salary: 38000,
	},
	{
		Name: "Jessica Taylor", Email: "jessica.taylor@example.com", Phone: "(555) 765-4321",
		Role: "Inventory Specialist", Department: "Inventory", JoinDate: "2022-02-20", Status: StatusActive,
		Address: "789 Pine St, City, State", EmergencyContact: "Mark Taylor (Brother) - (555) 234-5678",
		Salary: 41000,
	},
	{
		Name: "David Wilson", Email: "david.wilson@example.com", Phone: "(555) 234-5678",
		Role: "Customer Service", Department: "Customer Support", JoinDate: "2022-04-05", Status: StatusOnLeave,
		Address: "101 Maple Dr, City, State", EmergencyContact: "Emma Wilson (Wife) - (555) 345-6789",
		Salary: 36000,
	},
	{
		Name: "Emily Rodriguez", Email: "emily.rodriguez@example.com", Phone: "(555) 876-5432",
		Role: "Assistant Manager", Department: "Management", JoinDate: "2022-01-30", Status: StatusActive,
		Address: "202 Cedar St, City, State", EmergencyContact: "Lucas Rodriguez (Husband) - (555) 987-6543",
		Salary: 51000,
	},
	{
		Name: "James Brown", Email: "james.brown@example.com", Phone: "(555) 345-6789",
		Role: "IT Support", Department: "IT", JoinDate: "2022-05-15", Status: StatusInactive,
		Address: "303 Birch Ave, City, State", EmergencyContact: "Sophia Brown (Wife) - (555) 456-7890",
		Salary: 44000,
	},
}

var departmentRoles = map[string][]string{
	"Management":       {"Store Manager", "Assistant Manager", "Shift Supervisor"},
	"Sales":            {"Sales Associate", "Cashier", "Sales Lead"},
	"Inventory":        {"Inventory Specialist", "Stock Clerk", "Receiving Associate"},
	"Customer Support": {"Customer Service", "Returns Specialist"},
	"IT":               {"IT Support", "POS Administrator"},
	"Finance":          {"Bookkeeper", "Payroll Clerk"},
}

// departments fixes the iteration order over departmentRoles.
var departments = []string{"Management", "Sales", "Inventory", "Customer Support", "IT", "Finance"}

var (
	genders      = []string{"Female", "Male", "Non-binary"}
	educations   = []string{"High School", "Associate Degree", "Bachelor's Degree", "Master's Degree"}
	streets      = []string{"Main St", "Oak Ave", "Pine St", "Maple Dr", "Cedar St", "Birch Ave", "Elm St", "Lake Rd"}
	relations    = []string{"Spouse", "Parent", "Sibling", "Friend"}
	skillsByDept = map[string][]string{
		"Management":       {"Scheduling", "Budgeting", "Coaching", "Merchandising"},
		"Sales":            {"Upselling", "POS", "Product Knowledge", "Customer Service"},
		"Inventory":        {"Stock Counting", "Forklift", "Receiving", "Shrink Control"},
		"Customer Support": {"Returns", "Conflict Resolution", "Phone Support"},
		"IT":               {"Networking", "POS Hardware", "Help Desk"},
		"Finance":          {"Bookkeeping", "Payroll", "Reconciliation"},
	}
)
