package experian

// sampleReportXML mirrors a real Experian INProfile response with one
// revolving account past due and a bureau score.
const sampleReportXML = `<?xml version="1.0" encoding="UTF-8"?>
<INProfileResponse>
  <Header>
    <SystemCode>101</SystemCode>
    <ReportDate>20200723</ReportDate>
    <ReportTime>160558</ReportTime>
  </Header>
  <CreditProfileHeader>
    <Enquiry_Username>cred_user</Enquiry_Username>
    <ReportDate>20200723</ReportDate>
    <ReportTime>160558</ReportTime>
    <Version>V2.4</Version>
    <ReportNumber>1595504758919</ReportNumber>
  </CreditProfileHeader>
  <Current_Application>
    <Current_Application_Details>
      <Current_Applicant_Details>
        <First_Name>Sagar</First_Name>
        <Last_Name>Ugle</Last_Name>
        <MobilePhoneNumber>9819868011</MobilePhoneNumber>
        <IncomeTaxPan>AOZPB0247S</IncomeTaxPan>
        <Date_Of_Birth_Applicant>19850527</Date_Of_Birth_Applicant>
        <Gender_Code>1</Gender_Code>
      </Current_Applicant_Details>
    </Current_Application_Details>
  </Current_Application>
  <CAIS_Account>
    <CAIS_Summary>
      <Credit_Account>
        <CreditAccountTotal>1</CreditAccountTotal>
        <CreditAccountActive>1</CreditAccountActive>
        <CreditAccountDefault>0</CreditAccountDefault>
        <CreditAccountClosed>0</CreditAccountClosed>
      </Credit_Account>
      <Total_Outstanding_Balance>
        <Outstanding_Balance_Secured>0</Outstanding_Balance_Secured>
        <Outstanding_Balance_UnSecured>80000</Outstanding_Balance_UnSecured>
        <Outstanding_Balance_All>80000</Outstanding_Balance_All>
      </Total_Outstanding_Balance>
    </CAIS_Summary>
    <CAIS_Account_DETAILS>
      <Subscriber_Name>xxxxbank</Subscriber_Name>
      <Account_Number>12345678</Account_Number>
      <Portfolio_Type>R</Portfolio_Type>
      <Account_Type>10</Account_Type>
      <Open_Date>20190131</Open_Date>
      <Highest_Credit_or_Original_Loan_Amount>85000</Highest_Credit_or_Original_Loan_Amount>
      <Account_Status>11</Account_Status>
      <Payment_Rating>3</Payment_Rating>
      <Current_Balance>80000</Current_Balance>
      <Amount_Past_Due>4000</Amount_Past_Due>
      <Date_Reported>20200715</Date_Reported>
      <CAIS_Account_History>
        <Year>2020</Year>
        <Month>06</Month>
        <Days_Past_Due>32</Days_Past_Due>
        <Asset_Classification>B</Asset_Classification>
      </CAIS_Account_History>
      <CAIS_Account_History>
        <Year>2020</Year>
        <Month>05</Month>
        <Days_Past_Due>0</Days_Past_Due>
        <Asset_Classification>S</Asset_Classification>
      </CAIS_Account_History>
      <CAIS_Holder_Details>
        <First_Name_Non_Normalized>SAGAR</First_Name_Non_Normalized>
        <Surname_Non_Normalized>UGLE</Surname_Non_Normalized>
        <Income_TAX_PAN>AOZPB0247S</Income_TAX_PAN>
        <Date_of_birth>19850527</Date_of_birth>
      </CAIS_Holder_Details>
      <CAIS_Holder_Address_Details>
        <First_Line_Of_Address_non_Normalized>FLAT NO 301</First_Line_Of_Address_non_Normalized>
        <Second_Line_Of_Address_non_Normalized>SAI APARTMENT</Second_Line_Of_Address_non_Normalized>
        <City_non_Normalized>MUMBAI</City_non_Normalized>
        <State_non_Normalized>27</State_non_Normalized>
        <ZIP_Postal_Code_non_Normalized>400064</ZIP_Postal_Code_non_Normalized>
        <CountryCode_non_Normalized>IB</CountryCode_non_Normalized>
      </CAIS_Holder_Address_Details>
      <CAIS_Holder_Phone_Details>
        <Mobile_Telephone_Number>9819868011</Mobile_Telephone_Number>
      </CAIS_Holder_Phone_Details>
    </CAIS_Account_DETAILS>
  </CAIS_Account>
  <TotalCAPS_Summary>
    <TotalCAPSLast7Days>0</TotalCAPSLast7Days>
    <TotalCAPSLast30Days>0</TotalCAPSLast30Days>
    <TotalCAPSLast90Days>1</TotalCAPSLast90Days>
    <TotalCAPSLast180Days>2</TotalCAPSLast180Days>
  </TotalCAPS_Summary>
  <SCORE>
    <BureauScore>719</BureauScore>
    <BureauScoreConfidLevel>H</BureauScoreConfidLevel>
  </SCORE>
</INProfileResponse>`

// minimalReportXML has only the root and one section, enough to pass the
// structural gate but exercising every field-level default.
const minimalReportXML = `<INProfileResponse>
  <CAIS_Account>
    <CAIS_Account_DETAILS>
      <Subscriber_Name>somebank</Subscriber_Name>
      <Current_Balance>500</Current_Balance>
      <Amount_Past_Due></Amount_Past_Due>
      <Credit_Limit_Amount></Credit_Limit_Amount>
    </CAIS_Account_DETAILS>
  </CAIS_Account>
</INProfileResponse>`
