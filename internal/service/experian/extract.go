package experian

import (
	"strconv"

	"creditreportanalyser/internal/pkg/consts"
	"creditreportanalyser/internal/pkg/store/models"
)

// Per-field numeric policy:
//   - counts and balances coerce to int with a default of 0 on absence or
//     parse failure (intOrZero)
//   - credit limit, highest credit and repayment tenure stay nil when the
//     source key itself is absent, and become 0 when the key is present but
//     empty or unparseable (optionalInt); callers tell "no limit field"
//     from "limit of zero" by pointer nilness
//   - credit score is nil unless present and parseable; 0 is never a valid
//     placeholder for it

func intOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func optionalInt(m map[string]interface{}, key string) *int {
	if !hasKey(m, key) {
		return nil
	}
	n := intOrZero(stringAt(m, key))
	return &n
}

// firstNonEmpty resolves a fallback chain: ordered candidates, first
// non-empty value wins.
func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// firstAccount returns the first entry of the account container, used as the
// alternate location for applicant identity fields.
func firstAccount(root map[string]interface{}) map[string]interface{} {
	accounts := listAt(root, "CAIS_Account", "CAIS_Account_DETAILS")
	if len(accounts) == 0 {
		return nil
	}
	return accounts[0]
}

// extractBasicDetails resolves applicant identity. Real-world documents place
// these fields inconsistently depending on report vintage, so every field
// tries the applicant section first and falls back to the holder details
// nested inside the first account entry.
func extractBasicDetails(root map[string]interface{}) models.BasicDetails {
	applicant := mapAt(root, "Current_Application", "Current_Application_Details", "Current_Applicant_Details")
	holder := mapAt(firstAccount(root), "CAIS_Holder_Details")
	holderPhone := mapAt(firstAccount(root), "CAIS_Holder_Phone_Details")

	details := models.BasicDetails{
		FirstName: firstNonEmpty(
			stringAt(applicant, "First_Name"),
			stringAt(holder, "First_Name_Non_Normalized"),
		),
		LastName: firstNonEmpty(
			stringAt(applicant, "Last_Name"),
			stringAt(holder, "Surname_Non_Normalized"),
		),
		MobilePhone: firstNonEmpty(
			stringAt(applicant, "MobilePhoneNumber"),
			stringAt(holderPhone, "Mobile_Telephone_Number"),
		),
		PAN: firstNonEmpty(
			stringAt(applicant, "IncomeTaxPan"),
			stringAt(holder, "Income_TAX_PAN"),
		),
		DateOfBirth: NormalizeDate(firstNonEmpty(
			stringAt(applicant, "Date_Of_Birth_Applicant"),
			stringAt(holder, "Date_of_birth"),
		)),
	}

	switch stringAt(applicant, "Gender_Code") {
	case consts.GenderCodeMale:
		details.Gender = consts.GenderMale
	case consts.GenderCodeFemale:
		details.Gender = consts.GenderFemale
	}

	return details
}

// extractReportSummary reads the CAIS summary counters and the enquiry
// windows. The summary originates from its own source section, so
// totalAccounts is not required to match the per-account list length.
func extractReportSummary(root map[string]interface{}) models.ReportSummary {
	creditAccount := mapAt(root, "CAIS_Account", "CAIS_Summary", "Credit_Account")
	balances := mapAt(root, "CAIS_Account", "CAIS_Summary", "Total_Outstanding_Balance")
	caps := mapAt(root, "TotalCAPS_Summary")

	return models.ReportSummary{
		TotalAccounts:               intOrZero(stringAt(creditAccount, "CreditAccountTotal")),
		ActiveAccounts:              intOrZero(stringAt(creditAccount, "CreditAccountActive")),
		ClosedAccounts:              intOrZero(stringAt(creditAccount, "CreditAccountClosed")),
		DefaultAccounts:             intOrZero(stringAt(creditAccount, "CreditAccountDefault")),
		OutstandingBalanceSecured:   intOrZero(stringAt(balances, "Outstanding_Balance_Secured")),
		OutstandingBalanceUnsecured: intOrZero(stringAt(balances, "Outstanding_Balance_UnSecured")),
		OutstandingBalanceAll:       intOrZero(stringAt(balances, "Outstanding_Balance_All")),
		EnquiriesLast7Days:          intOrZero(stringAt(caps, "TotalCAPSLast7Days")),
		EnquiriesLast30Days:         intOrZero(stringAt(caps, "TotalCAPSLast30Days")),
		EnquiriesLast90Days:         intOrZero(stringAt(caps, "TotalCAPSLast90Days")),
		EnquiriesLast180Days:        intOrZero(stringAt(caps, "TotalCAPSLast180Days")),
	}
}

func extractAddress(account map[string]interface{}) models.Address {
	addresses := listAt(account, "CAIS_Holder_Address_Details")

	var addr map[string]interface{}
	if len(addresses) > 0 {
		addr = addresses[0]
	}

	address := models.Address{
		FirstLine:  stringAt(addr, "First_Line_Of_Address_non_Normalized"),
		SecondLine: stringAt(addr, "Second_Line_Of_Address_non_Normalized"),
		ThirdLine:  stringAt(addr, "Third_Line_Of_Address_non_Normalized"),
		City:       stringAt(addr, "City_non_Normalized"),
		State:      stringAt(addr, "State_non_Normalized"),
		PinCode:    stringAt(addr, "ZIP_Postal_Code_non_Normalized"),
		Country:    stringAt(addr, "CountryCode_non_Normalized"),
	}
	if address.Country == "" {
		address.Country = consts.DefaultCountryCode
	}

	return address
}

// extractHistory keeps the source order and passes duplicate months through
// verbatim.
func extractHistory(account map[string]interface{}) []models.AccountHistory {
	entries := listAt(account, "CAIS_Account_History")

	history := make([]models.AccountHistory, 0, len(entries))
	for _, entry := range entries {
		history = append(history, models.AccountHistory{
			Year:                intOrZero(stringAt(entry, "Year")),
			Month:               intOrZero(stringAt(entry, "Month")),
			DaysPastDue:         intOrZero(stringAt(entry, "Days_Past_Due")),
			AssetClassification: stringAt(entry, "Asset_Classification"),
		})
	}

	return history
}

// extractAccounts normalizes the account container (single object or array)
// and maps each entry. Coded fields stay raw; decoding is a presentation
// concern.
func extractAccounts(root map[string]interface{}) []models.CreditAccount {
	entries := listAt(root, "CAIS_Account", "CAIS_Account_DETAILS")

	accounts := make([]models.CreditAccount, 0, len(entries))
	for _, entry := range entries {
		accounts = append(accounts, models.CreditAccount{
			SubscriberName:  stringAt(entry, "Subscriber_Name"),
			AccountNumber:   stringAt(entry, "Account_Number"),
			PortfolioType:   stringAt(entry, "Portfolio_Type"),
			AccountType:     stringAt(entry, "Account_Type"),
			OpenDate:        NormalizeDate(stringAt(entry, "Open_Date")),
			DateReported:    NormalizeDate(stringAt(entry, "Date_Reported")),
			DateClosed:      NormalizeDate(stringAt(entry, "Date_Closed")),
			CreditLimit:     optionalInt(entry, "Credit_Limit_Amount"),
			HighestCredit:   optionalInt(entry, "Highest_Credit_or_Original_Loan_Amount"),
			CurrentBalance:  intOrZero(stringAt(entry, "Current_Balance")),
			AmountPastDue:   intOrZero(stringAt(entry, "Amount_Past_Due")),
			AccountStatus:   stringAt(entry, "Account_Status"),
			PaymentRating:   stringAt(entry, "Payment_Rating"),
			RepaymentTenure: optionalInt(entry, "Repayment_Tenure"),
			Address:         extractAddress(entry),
			History:         extractHistory(entry),
		})
	}

	return accounts
}

// extractScore reads the dedicated score section. The score is absent when
// the section or field is missing, never defaulted to 0.
func extractScore(root map[string]interface{}) (*int, string) {
	score := mapAt(root, "SCORE")
	if score == nil {
		return nil, ""
	}

	confidence := stringAt(score, "BureauScoreConfidLevel")

	raw := stringAt(score, "BureauScore")
	if raw == "" {
		return nil, confidence
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, confidence
	}

	return &n, confidence
}
