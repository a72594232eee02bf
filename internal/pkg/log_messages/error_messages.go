package log_messages

const (
	TopicDoesNotExists               = "pubsub topic does not exist: %v"
	ErrorMarshallingMessage          = "failed to marshal message: %v"
	ErrorInMessagePublishing         = "failed to publish message: %v"
	ErrorPubSubClientCreation        = "error creating pubsub client: %v"
	ErrorFetchingCreditReportDoc     = "error fetching document from creditreports mongoDB: %v"
	ErrorInsertingCreditReportDoc    = "error inserting document into creditreports mongoDB: %v"
	ErrorDeletingCreditReportDoc     = "error deleting document from creditreports mongoDB: %v"
	ErrorAggregatingCreditReports    = "error aggregating creditreports mongoDB: %v"
	ErrorEnsuringCreditReportIndexes = "error ensuring creditreports indexes: %v"
	EmptyDocumentFoundFromDb         = "no associated mongodb document found: %v"
	ErrorReadingUploadedFile         = "error reading uploaded report file: %v"
	ErrorConvertingXMLToTree         = "error converting report XML to tree: %v"
)
