package seed

import (
	"pet-records/internal/domain/pets"
	"pet-records/internal/domain/records"
)

type petSeed struct {
	pet       pets.CreateInput
	vaccines  []records.VaccineInput
	allergies []records.AllergyInput
}

// shots arma las vacunas aplicadas en una misma fecha.
func shots(date string, names ...string) []records.VaccineInput {
	out := make([]records.VaccineInput, 0, len(names))
	for _, n := range names {
		out = append(out, records.VaccineInput{VaccineName: n, AdministeredDate: date})
	}
	return out
}

func concat(groups ...[]records.VaccineInput) []records.VaccineInput {
	var out []records.VaccineInput
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func allergy(name, severity string, reactions ...string) records.AllergyInput {
	return records.AllergyInput{AllergyName: name, Reactions: reactions, Severity: severity}
}

func pet(name, animal, owner, dob string) pets.CreateInput {
	return pets.CreateInput{Name: name, AnimalType: animal, OwnerName: owner, DateOfBirth: dob}
}

var dataset = []petSeed{
	{
		pet: pet("Buddy", "dog", "John Smith", "2020-05-15"),
		vaccines: concat(
			shots("2021-06-15", "Rabies", "DHPP", "Bordetella"),
			shots("2022-06-15", "Rabies", "DHPP", "Bordetella"),
			shots("2023-06-15", "Rabies", "DHPP", "Leptospirosis"),
			shots("2024-06-15", "Rabies", "DHPP"),
			shots("2024-10-01", "Bordetella"),
		),
		allergies: []records.AllergyInput{
			allergy("Peanuts", "severe", "Hives", "Swelling", "Difficulty breathing"),
			allergy("Chicken", "mild", "Itching", "Rash"),
			allergy("Wheat", "mild", "Vomiting", "Diarrhea"),
		},
	},
	{
		pet: pet("Whiskers", "cat", "Jane Doe", "2019-08-22"),
		vaccines: concat(
			shots("2020-09-22", "FVRCP", "Rabies"),
			shots("2021-09-22", "FVRCP", "Rabies"),
			shots("2022-09-22", "FVRCP"),
			shots("2023-09-22", "Rabies"),
			shots("2024-09-22", "FVRCP"),
		),
		allergies: []records.AllergyInput{
			allergy("Chicken", "mild", "Itching", "Rash", "Vomiting"),
			allergy("Beef", "mild", "Hives"),
		},
	},
	{
		pet: pet("Tweety", "bird", "Bob Johnson", "2022-01-10"),
		vaccines: concat(
			shots("2022-02-10", "Avian Polyomavirus"),
			shots("2023-02-10", "Avian Polyomavirus"),
			shots("2024-02-10", "Avian Polyomavirus"),
		),
		allergies: []records.AllergyInput{
			allergy("Dust", "mild", "Sneezing", "Watery eyes"),
		},
	},
	{
		pet: pet("Max", "dog", "Sarah Williams", "2021-03-20"),
		vaccines: concat(
			shots("2022-04-20", "Rabies", "DHPP"),
			shots("2023-04-20", "Rabies", "DHPP", "Leptospirosis"),
			shots("2024-04-20", "Rabies", "DHPP"),
		),
		allergies: []records.AllergyInput{
			allergy("Beef", "severe", "Vomiting", "Diarrhea", "Lethargy"),
			allergy("Soy", "mild", "Itching", "Rash"),
			allergy("Corn", "mild", "Hives"),
		},
	},
	{
		pet: pet("Luna", "cat", "Mike Brown", "2020-11-05"),
		vaccines: concat(
			shots("2021-12-05", "FVRCP", "Rabies"),
			shots("2022-12-05", "FVRCP"),
			shots("2023-12-05", "Rabies"),
			shots("2024-12-05", "FVRCP"),
		),
		allergies: []records.AllergyInput{
			allergy("Fish", "mild", "Itching", "Hives", "Swelling"),
			allergy("Dairy", "mild", "Vomiting"),
		},
	},
	{
		pet: pet("Charlie", "rabbit", "Emily Davis", "2023-02-14"),
		vaccines: concat(
			shots("2023-03-14", "Rabbit Hemorrhagic Disease"),
			shots("2024-03-14", "Rabbit Hemorrhagic Disease"),
		),
		allergies: []records.AllergyInput{
			allergy("Hay", "mild", "Sneezing", "Watery eyes", "Itching"),
			allergy("Timothy Grass", "mild", "Sneezing", "Watery eyes"),
		},
	},
	{
		pet: pet("Rocky", "dog", "Chris Miller", "2019-12-01"),
		vaccines: concat(
			shots("2020-01-01", "Rabies", "DHPP"),
			shots("2021-01-01", "Rabies", "DHPP"),
			shots("2022-01-01", "Rabies", "DHPP"),
			shots("2023-01-01", "Rabies", "DHPP"),
			shots("2024-01-01", "Rabies", "DHPP"),
		),
		allergies: []records.AllergyInput{
			allergy("Corn", "mild", "Rash", "Itching", "Vomiting"),
			allergy("Wheat", "mild", "Diarrhea", "Lethargy"),
			allergy("Chicken", "mild", "Hives"),
		},
	},
	{
		pet: pet("Bella", "cat", "Lisa Anderson", "2022-06-30"),
		vaccines: concat(
			shots("2022-07-30", "FVRCP", "Rabies"),
			shots("2023-07-30", "FVRCP"),
			shots("2024-07-30", "Rabies"),
		),
		allergies: []records.AllergyInput{
			allergy("Dairy", "severe", "Vomiting", "Diarrhea", "Difficulty breathing"),
			allergy("Fish", "severe", "Hives", "Swelling"),
		},
	},
	{
		pet: pet("Polly", "bird", "David Wilson", "2021-09-18"),
		vaccines: concat(
			shots("2022-10-18", "Avian Polyomavirus"),
			shots("2023-10-18", "Avian Polyomavirus"),
			shots("2024-10-18", "Avian Polyomavirus"),
		),
	},
	{
		pet: pet("Snowball", "rabbit", "Jessica Taylor", "2023-04-25"),
		vaccines: concat(
			shots("2023-05-25", "Rabbit Hemorrhagic Disease"),
			shots("2024-05-25", "Rabbit Hemorrhagic Disease"),
		),
	},
	{
		pet: pet("Duke", "dog", "Robert Martinez", "2018-07-08"),
		vaccines: concat(
			shots("2019-08-08", "Rabies", "DHPP", "Bordetella"),
			shots("2020-08-08", "Rabies", "DHPP"),
			shots("2021-08-08", "Rabies", "DHPP", "Leptospirosis"),
			shots("2022-08-08", "Rabies", "DHPP"),
			shots("2023-08-08", "Rabies", "DHPP"),
			shots("2024-08-08", "Rabies", "DHPP"),
		),
		allergies: []records.AllergyInput{
			allergy("Beef", "mild", "Itching", "Rash", "Hives"),
			allergy("Pollen", "mild", "Sneezing", "Watery eyes"),
			allergy("Flea Saliva", "severe", "Itching", "Rash", "Swelling"),
		},
	},
	{
		pet: pet("Mittens", "cat", "Patricia Garcia", "2020-03-12"),
		vaccines: concat(
			shots("2021-04-12", "FVRCP", "Rabies"),
			shots("2022-04-12", "FVRCP"),
			shots("2023-04-12", "Rabies"),
			shots("2024-04-12", "FVRCP"),
		),
		allergies: []records.AllergyInput{
			allergy("Tuna", "mild", "Vomiting", "Diarrhea"),
		},
	},
	{
		pet: pet("Fluffy", "rabbit", "Michael Rodriguez", "2022-11-20"),
		vaccines: concat(
			shots("2023-01-20", "Rabbit Hemorrhagic Disease"),
			shots("2024-01-20", "Rabbit Hemorrhagic Disease"),
		),
	},
	{
		pet: pet("Shadow", "cat", "Jennifer Lee", "2019-05-30"),
		vaccines: concat(
			shots("2020-06-30", "FVRCP", "Rabies"),
			shots("2021-06-30", "FVRCP"),
			shots("2022-06-30", "Rabies"),
			shots("2023-06-30", "FVRCP"),
			shots("2024-06-30", "Rabies"),
		),
		allergies: []records.AllergyInput{
			allergy("Chicken", "mild", "Itching", "Hives", "Vomiting"),
			allergy("Dust Mites", "mild", "Sneezing", "Watery eyes", "Itching"),
		},
	},
	{
		pet: pet("Cooper", "dog", "William Walker", "2021-08-14"),
		vaccines: concat(
			shots("2022-09-14", "Rabies", "DHPP"),
			shots("2023-09-14", "Rabies", "DHPP"),
			shots("2024-09-14", "Rabies", "DHPP"),
		),
		allergies: []records.AllergyInput{
			allergy("Lamb", "mild", "Rash", "Itching"),
		},
	},
}
