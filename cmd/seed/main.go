// Command seed wipes the store and loads the demo data set.
package main

import (
	"context"

	"caretrack/internal/adapter/postgres"
	"caretrack/internal/domain"
	"caretrack/internal/dsn"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	db := postgres.New(dsn.FromEnv())
	defer func() { _ = db.Close() }()

	if _, err := db.Conn(ctx); err != nil {
		log.Fatalf("connect store: %v", err)
	}
	if err := db.Wipe(ctx); err != nil {
		log.Fatalf("wipe: %v", err)
	}
	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	store := postgres.NewStore(db)
	seedPatients(ctx, store)
	seedCaregivers(ctx, store)
	seedTreatments(ctx, store)
	seedUsers(ctx, store)
	log.Info("demo data loaded")
}

func seedPatients(ctx context.Context, store *postgres.Store) {
	repo := store.Patients()
	for _, p := range []struct {
		first, sur, dob, level, room string
	}{
		{"Seppl", "Herberger", "1945-12-01", "4", "202"},
		{"Martina", "Gerdsen", "1954-08-12", "5", "010"},
		{"Gertrud", "Franzen", "1949-04-16", "3", "002"},
		{"Ahmet", "Yilmaz", "1941-02-22", "3", "013"},
		{"Hans", "Neumann", "1955-12-12", "2", "001"},
		{"Elisabeth", "Müller", "1958-03-07", "5", "110"},
	} {
		dob, err := domain.ParseDate(p.dob)
		if err != nil {
			log.Fatalf("seed patients: %v", err)
		}
		patient := domain.Patient{
			Person:      domain.Person{FirstName: p.first, Surname: p.sur},
			DateOfBirth: dob,
			CareLevel:   p.level,
			RoomNumber:  p.room,
		}
		if err := repo.Create(ctx, &patient); err != nil {
			log.Fatalf("seed patients: %v", err)
		}
	}
}

func seedCaregivers(ctx context.Context, store *postgres.Store) {
	repo := store.Caregivers()
	for _, c := range []struct {
		first, sur, tel string
	}{
		{"Marvin", "Meiling", "034578536235"},
		{"Martina", "Paul", "046572046732"},
		{"Alisa", "Franzen", "030472637583"},
		{"Dani", "Meier", "050403827625"},
		{"Anna", "Meier", "054364554322"},
	} {
		caregiver := domain.Caregiver{
			Person:    domain.Person{FirstName: c.first, Surname: c.sur},
			TelNumber: c.tel,
		}
		if err := repo.Create(ctx, &caregiver); err != nil {
			log.Fatalf("seed caregivers: %v", err)
		}
	}
}

func seedTreatments(ctx context.Context, store *postgres.Store) {
	repo := store.Treatments()
	for _, t := range []struct {
		pid              int64
		date, begin, end string
		desc, remark     string
		cgid             int64
	}{
		{1, "2023-06-03", "11:00", "15:00", "Gespräch", "Der Patient hat enorme Angstgefühle und glaubt, er sei überfallen worden. Patient beruhigt sich erst, als alle Wertsachen im Zimmer gefunden worden sind.", 1},
		{1, "2023-06-05", "11:00", "12:30", "Gespräch", "Patient irrt auf der Suche nach gestohlenen Wertsachen durch die Etage und bezichtigt andere Bewohner des Diebstahls. Patient wird in seinen Raum zurückbegleitet und erhält Beruhigungsmittel.", 1},
		{2, "2023-06-04", "07:30", "08:00", "Waschen", "Patient mit Waschlappen gewaschen und frisch angezogen. Patient gewendet.", 5},
		{1, "2023-06-06", "15:10", "16:00", "Spaziergang", "Spaziergang im Park, Patient döst im Rollstuhl ein", 4},
		{1, "2023-06-08", "15:00", "16:00", "Spaziergang", "Parkspaziergang; Patient ist heute lebhafter und hat klare Momente; erzählt von seiner Tochter", 1},
		{2, "2023-06-07", "11:00", "11:30", "Waschen", "Waschen per Dusche auf einem Stuhl; Patientin gewendet;", 1},
		{5, "2023-06-08", "15:00", "15:30", "Physiotherapie", "Übungen zur Stabilisation und Mobilisierung der Rückenmuskulatur", 2},
		{4, "2023-08-24", "09:30", "10:15", "KG", "Lymphdrainage", 3},
		{6, "2023-08-31", "13:30", "13:45", "Toilettengang", "Hilfe beim Toilettengang; Patientin klagt über Schmerzen beim Stuhlgang. Gabe von Iberogast", 1},
		{6, "2023-09-01", "16:00", "17:00", "KG", "Massage der Extremitäten zur Verbesserung der Durchblutung", 1},
	} {
		date, err := domain.ParseDate(t.date)
		if err != nil {
			log.Fatalf("seed treatments: %v", err)
		}
		begin, err := domain.ParseTimeOfDay(t.begin)
		if err != nil {
			log.Fatalf("seed treatments: %v", err)
		}
		end, err := domain.ParseTimeOfDay(t.end)
		if err != nil {
			log.Fatalf("seed treatments: %v", err)
		}
		treatment := domain.Treatment{
			PatientID:   t.pid,
			Date:        date,
			Begin:       begin,
			End:         end,
			Description: t.desc,
			Remark:      t.remark,
			CaregiverID: t.cgid,
		}
		if err := repo.Create(ctx, &treatment); err != nil {
			log.Fatalf("seed treatments: %v", err)
		}
	}
}

func seedUsers(ctx context.Context, store *postgres.Store) {
	repo := store.Users()
	for _, u := range []struct {
		name, password string
		legacy         bool
	}{
		{"Natali Paul", "12345678", false},
		{"Marilyn Monroe", "87654321", false},
		{"Lili Bauer", "Hallo123", false},
		{"Jarne Baum", "Hi987654321", false},
		// One row kept in plain text to exercise the legacy login path.
		{"Marvin Meier", "BaumHierDa", true},
	} {
		stored := u.password
		if !u.legacy {
			hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
			if err != nil {
				log.Fatalf("seed users: %v", err)
			}
			stored = string(hash)
		}
		user := domain.User{Username: u.name, Password: stored}
		if err := repo.Create(ctx, &user); err != nil {
			log.Fatalf("seed users: %v", err)
		}
	}
}
