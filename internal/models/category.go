package models

// Transaction categories produced by the dataset generator
const (
	CategoryFoodDining     = "Food & Dining"
	CategoryShopping       = "Shopping"
	CategoryTransportation = "Transportation"
	CategoryEntertainment  = "Entertainment"
	CategoryBillsUtilities = "Bills & Utilities"
	CategoryHealthcare     = "Healthcare"
	CategoryTravel         = "Travel"
	CategoryEducation      = "Education"
	CategoryIncome         = "Income"
)

// Payment methods produced by the dataset generator
const (
	PaymentMethodCreditCard = "Credit Card"
	PaymentMethodDebitCard  = "Debit Card"
	PaymentMethodUPI        = "UPI"
	PaymentMethodNetBanking = "Net Banking"
	PaymentMethodCash       = "Cash"
	PaymentMethodWallet     = "Wallet"
)

// CategorySubcategories maps every category to its subcategories
var CategorySubcategories = map[string][]string{
	CategoryFoodDining: {
		"Restaurant", "Cafe", "Fast Food", "Grocery Store", "Food Delivery",
		"Coffee Shop", "Bakery", "Bar", "Fine Dining",
	},
	CategoryShopping: {
		"Clothing Store", "Electronics", "Online Shopping", "Department Store",
		"Bookstore", "Pharmacy", "Furniture", "Sporting Goods",
	},
	CategoryTransportation: {
		"Gas Station", "Uber", "Taxi", "Public Transit", "Parking",
		"Car Maintenance", "Toll", "Car Rental",
	},
	CategoryEntertainment: {
		"Movie Theater", "Concert", "Streaming Service", "Gaming",
		"Sports Event", "Museum", "Theme Park", "Music Subscription",
	},
	CategoryBillsUtilities: {
		"Electricity Bill", "Water Bill", "Internet Bill", "Phone Bill",
		"Gas Bill", "Insurance", "Rent", "Mortgage",
	},
	CategoryHealthcare: {
		"Doctor Visit", "Pharmacy", "Dental", "Hospital", "Lab Tests",
		"Health Insurance", "Gym Membership", "Wellness",
	},
	CategoryTravel: {
		"Hotel", "Flight", "Vacation Package", "Travel Insurance",
		"Luggage", "Tourist Attraction", "Resort",
	},
	CategoryEducation: {
		"Tuition", "Books", "Online Course", "Workshop", "Certification",
		"School Supplies", "Training",
	},
	CategoryIncome: {
		"Salary", "Freelance Payment", "Bonus", "Investment Return",
		"Refund", "Gift", "Cashback",
	},
}

// AllCategories returns all categories in a stable order
func AllCategories() []string {
	return []string{
		CategoryFoodDining,
		CategoryShopping,
		CategoryTransportation,
		CategoryEntertainment,
		CategoryBillsUtilities,
		CategoryHealthcare,
		CategoryTravel,
		CategoryEducation,
		CategoryIncome,
	}
}

// AllPaymentMethods returns all payment methods in a stable order
func AllPaymentMethods() []string {
	return []string{
		PaymentMethodCreditCard,
		PaymentMethodDebitCard,
		PaymentMethodUPI,
		PaymentMethodNetBanking,
		PaymentMethodCash,
		PaymentMethodWallet,
	}
}
