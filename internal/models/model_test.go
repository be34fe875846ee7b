package models_test

import (
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tripfolio/backend/internal/models"
)

// TestActivityMemberUnique verifies that the composite key on pairings is
// enforced and translated to the sentinel error.
func (suite *TestSuiteStandard) TestActivityMemberUnique() {
	activity := suite.createTestActivity(models.Activity{})
	member := suite.createTestMember(models.Member{})

	pairing := models.ActivityMember{ActivityID: activity.ID, MemberID: member.ID}
	err := models.DB.Create(&pairing).Error
	assert.Nil(suite.T(), err)

	duplicate := models.ActivityMember{ActivityID: activity.ID, MemberID: member.ID}
	err = models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrActivityMemberExists)
}

// TestActivityRatingUnique verifies that a member can only rate an activity
// once and that the violation is translated to the sentinel error.
func (suite *TestSuiteStandard) TestActivityRatingUnique() {
	activity := suite.createTestActivity(models.Activity{})
	member := suite.createTestMember(models.Member{})

	rating := models.ActivityRating{ActivityID: activity.ID, MemberID: member.ID, Rating: 4}
	err := models.DB.Create(&rating).Error
	assert.Nil(suite.T(), err)

	duplicate := models.ActivityRating{ActivityID: activity.ID, MemberID: member.ID, Rating: 2}
	err = models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrActivityRatingExists)

	// The same member can rate another activity
	other := suite.createTestActivity(models.Activity{})
	second := models.ActivityRating{ActivityID: other.ID, MemberID: member.ID, Rating: 5}
	err = models.DB.Create(&second).Error
	assert.Nil(suite.T(), err)
}

// TestDestinationDeleteCascades verifies that deleting a destination
// removes its activities and everything hanging off them.
func (suite *TestSuiteStandard) TestDestinationDeleteCascades() {
	destination := suite.createTestDestination(models.Destination{})
	activity := suite.createTestActivity(models.Activity{DestinationID: destination.ID})
	member := suite.createTestMember(models.Member{})

	err := models.DB.Create(&models.ActivityMember{ActivityID: activity.ID, MemberID: member.ID}).Error
	assert.Nil(suite.T(), err)

	expense := models.Expense{
		ActivityID: activity.ID,
		Amount:     decimal.NewFromFloat(50),
		ExpenseSplits: []models.ExpenseSplit{
			{MemberID: member.ID, Share: decimal.NewFromFloat(50)},
		},
	}
	err = models.DB.Create(&expense).Error
	assert.Nil(suite.T(), err)

	err = models.DB.Delete(&destination).Error
	assert.Nil(suite.T(), err)

	var count int64
	models.DB.Model(&models.Activity{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)

	models.DB.Model(&models.ActivityMember{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)

	models.DB.Model(&models.Expense{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)

	models.DB.Model(&models.ExpenseSplit{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)

	// The member itself is not affected
	models.DB.Model(&models.Member{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

// TestMemberDeleteCascades verifies that deleting a member removes their
// pairings, splits and ratings but leaves activities and expenses alone.
func (suite *TestSuiteStandard) TestMemberDeleteCascades() {
	activity := suite.createTestActivity(models.Activity{})
	member := suite.createTestMember(models.Member{})

	err := models.DB.Create(&models.ActivityMember{ActivityID: activity.ID, MemberID: member.ID}).Error
	assert.Nil(suite.T(), err)

	err = models.DB.Create(&models.ActivityRating{ActivityID: activity.ID, MemberID: member.ID, Rating: 3}).Error
	assert.Nil(suite.T(), err)

	expense := models.Expense{
		ActivityID: activity.ID,
		Amount:     decimal.NewFromFloat(50),
		ExpenseSplits: []models.ExpenseSplit{
			{MemberID: member.ID, Share: decimal.NewFromFloat(50)},
		},
	}
	err = models.DB.Create(&expense).Error
	assert.Nil(suite.T(), err)

	err = models.DB.Delete(&member).Error
	assert.Nil(suite.T(), err)

	var count int64
	models.DB.Model(&models.ActivityMember{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)

	models.DB.Model(&models.ActivityRating{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)

	models.DB.Model(&models.ExpenseSplit{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)

	// The expense and the activity stay
	models.DB.Model(&models.Expense{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count)

	models.DB.Model(&models.Activity{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

// TestGeneralErrorOnClosedDB verifies that unspecific database errors are
// replaced with the general sentinel error.
func (suite *TestSuiteStandard) TestGeneralErrorOnClosedDB() {
	suite.CloseDB()

	var destinations []models.Destination
	err := models.DB.Find(&destinations).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
