package repository_test

import (
	"context"
	"testing"

	"github.com/fabrimet/salesops-api/internal/domain"
	"github.com/fabrimet/salesops-api/internal/repository"
	"github.com/fabrimet/salesops-api/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createContactPerson(t *testing.T, db *gorm.DB, companyID uuid.UUID, name string, primary bool) *domain.ContactPerson {
	t.Helper()
	person := &domain.ContactPerson{
		CompanyID: companyID,
		Name:      name,
		IsPrimary: primary,
	}
	require.NoError(t, db.Create(person).Error)
	return person
}

func TestContactPersonRepository_TableName(t *testing.T) {
	db := testutil.SetupNewSchemaDB(t)

	company := testutil.CreateCompany(t, db, "Acme Industries")
	createContactPerson(t, db, company.ID, "Asha", true)

	// The model must map to the migrated table, not gorm's pluralization
	// ("contact_people"), or every raw Table() query misses the rows.
	var count int64
	require.NoError(t, db.Table("contact_persons").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestContactPersonRepository_ListByCompany(t *testing.T) {
	db := testutil.SetupNewSchemaDB(t)
	repo := repository.NewContactPersonRepository(db)

	company := testutil.CreateCompany(t, db, "Acme Industries")
	other := testutil.CreateCompany(t, db, "Bharat Steel")

	createContactPerson(t, db, company.ID, "Ravi", false)
	createContactPerson(t, db, company.ID, "Asha", true)
	createContactPerson(t, db, other.ID, "Meera", true)

	persons, err := repo.ListByCompany(context.Background(), company.ID)
	require.NoError(t, err)
	require.Len(t, persons, 2)
	// Primary first, then alphabetical.
	assert.Equal(t, "Asha", persons[0].Name)
	assert.Equal(t, "Ravi", persons[1].Name)
}

func TestContactPersonRepository_SetPrimary(t *testing.T) {
	db := testutil.SetupNewSchemaDB(t)
	repo := repository.NewContactPersonRepository(db)

	company := testutil.CreateCompany(t, db, "Acme Industries")
	asha := createContactPerson(t, db, company.ID, "Asha", true)
	ravi := createContactPerson(t, db, company.ID, "Ravi", false)

	require.NoError(t, repo.SetPrimary(context.Background(), company.ID, ravi.ID))

	gotAsha, err := repo.GetByID(context.Background(), asha.ID)
	require.NoError(t, err)
	assert.False(t, gotAsha.IsPrimary)

	gotRavi, err := repo.GetByID(context.Background(), ravi.ID)
	require.NoError(t, err)
	assert.True(t, gotRavi.IsPrimary)
}

func TestContactPersonRepository_SetPrimary_OtherCompanyUntouched(t *testing.T) {
	db := testutil.SetupNewSchemaDB(t)
	repo := repository.NewContactPersonRepository(db)

	company := testutil.CreateCompany(t, db, "Acme Industries")
	other := testutil.CreateCompany(t, db, "Bharat Steel")
	asha := createContactPerson(t, db, company.ID, "Asha", false)
	meera := createContactPerson(t, db, other.ID, "Meera", true)

	require.NoError(t, repo.SetPrimary(context.Background(), company.ID, asha.ID))

	gotMeera, err := repo.GetByID(context.Background(), meera.ID)
	require.NoError(t, err)
	assert.True(t, gotMeera.IsPrimary)
}

func TestContactPersonRepository_Search(t *testing.T) {
	db := testutil.SetupNewSchemaDB(t)
	repo := repository.NewContactPersonRepository(db)

	company := testutil.CreateCompany(t, db, "Acme Industries")
	createContactPerson(t, db, company.ID, "Asha Patil", false)
	createContactPerson(t, db, company.ID, "Ravi Kumar", false)

	persons, err := repo.Search(context.Background(), "asha", 10)
	require.NoError(t, err)
	require.Len(t, persons, 1)
	assert.Equal(t, "Asha Patil", persons[0].Name)
}

func TestContactPersonRepository_Delete(t *testing.T) {
	db := testutil.SetupNewSchemaDB(t)
	repo := repository.NewContactPersonRepository(db)

	company := testutil.CreateCompany(t, db, "Acme Industries")
	asha := createContactPerson(t, db, company.ID, "Asha", false)

	require.NoError(t, repo.Delete(context.Background(), asha.ID))

	_, err := repo.GetByID(context.Background(), asha.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
