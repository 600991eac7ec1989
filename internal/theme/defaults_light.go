package theme

// defaultLightColors is the baseline light-mode value for every catalog
// property. Configuration asset, load-once and read-only.
var defaultLightColors = map[string]string{
	"windowBg":                      "ffffff",
	"windowFg":                      "000000",
	"windowBgOver":                  "f1f1f1",
	"windowBgRipple":                "e5e5e5",
	"windowSubTextFg":               "999999",
	"windowBoldFg":                  "222222",
	"windowBgActive":                "419fd9",
	"windowFgActive":                "ffffff",
	"windowActiveTextFg":            "168acd",
	"windowShadowFg":                "00000018",
	"shadowFg":                      "00000018",
	"imageBg":                       "000000",
	"activeButtonBg":                "419fd9",
	"activeButtonBgOver":            "398fc4",
	"activeButtonBgRipple":          "2f7cab",
	"activeButtonFg":                "ffffff",
	"activeButtonSecondaryFg":       "cceeff",
	"activeLineFg":                  "419fd9",
	"activeLineFgError":             "d84d4d",
	"lightButtonBg":                 "ffffff",
	"lightButtonBgOver":             "e3f1fa",
	"lightButtonFg":                 "168acd",
	"attentionButtonFg":             "d84d4d",
	"attentionButtonFgOver":         "c04949",
	"attentionButtonBgOver":         "fbe3e3",
	"outlineButtonBg":               "ffffff",
	"outlineButtonOutlineFg":        "419fd9",
	"scrollBarBg":                   "00000053",
	"scrollBg":                      "0000001a",
	"placeholderFg":                 "aaaaaa",
	"inputBorderFg":                 "e0e0e0",
	"filterInputBorderFg":           "419fd9",
	"checkboxFg":                    "b3b3b3",
	"sliderBgInactive":              "c8c8c8",
	"sliderBgActive":                "419fd9",
	"tooltipBg":                     "eef2f5",
	"tooltipFg":                     "5d6c80",
	"titleShadow":                   "00000003",
	"titleBg":                       "ffffff",
	"titleBgActive":                 "e8e8e8",
	"titleButtonFg":                 "acacac",
	"titleButtonBgOver":             "e5e5e5",
	"titleButtonFgOver":             "9a9a9a",
	"titleButtonCloseFg":            "acacac",
	"titleButtonCloseBgOver":        "e81123",
	"titleButtonCloseFgOver":        "ffffff",
	"titleFg":                       "3e3c3e",
	"titleFgActive":                 "3e3c3e",
	"menuBg":                        "ffffff",
	"menuBgOver":                    "f1f1f1",
	"menuBgRipple":                  "e5e5e5",
	"menuIconFg":                    "a8a8a8",
	"menuIconFgOver":                "999999",
	"menuFgDisabled":                "cccccc",
	"menuSeparatorFg":               "f1f1f1",
	"dialogsMenuIconFg":             "a8a8a8",
	"dialogsMenuIconFgOver":         "999999",
	"dialogsBg":                     "ffffff",
	"dialogsNameFg":                 "000000",
	"dialogsChatIconFg":             "000000",
	"dialogsDateFg":                 "999999",
	"dialogsTextFg":                 "999999",
	"dialogsTextFgService":          "168acd",
	"dialogsDraftFg":                "d84d4d",
	"dialogsVerifiedIconBg":         "419fd9",
	"dialogsVerifiedIconFg":         "ffffff",
	"dialogsSendingIconFg":          "c1c1c1",
	"dialogsSentIconFg":             "5dc452",
	"dialogsUnreadBg":               "419fd9",
	"dialogsUnreadBgMuted":          "c8c8c8",
	"dialogsUnreadFg":               "ffffff",
	"dialogsBgOver":                 "f1f1f1",
	"dialogsBgActive":               "419fd9",
	"dialogsNameFgActive":           "ffffff",
	"dialogsDateFgActive":           "ffffff",
	"dialogsTextFgActive":           "ffffff",
	"dialogsUnreadBgActive":         "ffffff",
	"dialogsUnreadBgMutedActive":    "c6e1f7",
	"dialogsUnreadFgActive":         "419fd9",
	"dialogsRippleBg":               "e5e5e5",
	"dialogsRippleBgActive":         "378cbf",
	"dialogsForwardBg":              "419fd9",
	"dialogsForwardFg":              "ffffff",
	"searchedBarBg":                 "f1f1f1",
	"searchedBarFg":                 "777777",
	"topBarBg":                      "ffffff",
	"historyTextInFg":               "000000",
	"historyTextInFgSelected":       "000000",
	"historyTextOutFg":              "000000",
	"historyTextOutFgSelected":      "000000",
	"historyLinkInFg":               "168acd",
	"historyLinkInFgSelected":       "168acd",
	"historyLinkOutFg":              "168acd",
	"historyLinkOutFgSelected":      "168acd",
	"historyFileNameInFg":           "000000",
	"historyFileNameOutFg":          "000000",
	"historyOutIconFg":              "5dc452",
	"historyOutIconFgSelected":      "4da93f",
	"historyIconFgInverted":         "ffffff",
	"historySendingOutIconFg":       "98d292",
	"historySendingInIconFg":        "a0adb5",
	"historyCallArrowInFg":          "26b12e",
	"historyCallArrowMissedInFg":    "d84d4d",
	"historyCallArrowOutFg":         "26b12e",
	"historyUnreadBarBg":            "ffffff",
	"historyUnreadBarBorder":        "00000018",
	"historyUnreadBarFg":            "168acd",
	"historyForwardChooseBg":        "0000004c",
	"historyForwardChooseFg":        "ffffff",
	"historyPeer1NameFg":            "c03d33",
	"historyPeer2NameFg":            "4fad2d",
	"historyPeer3NameFg":            "d09306",
	"historyPeer4NameFg":            "168acd",
	"msgInBg":                       "ffffff",
	"msgInBgSelected":               "c2dcf2",
	"msgOutBg":                      "efffde",
	"msgOutBgSelected":              "b7dbdb",
	"msgSelectOverlay":              "358cd44c",
	"msgStickerOverlay":             "358cd47f",
	"msgInServiceFg":                "168acd",
	"msgInServiceFgSelected":        "168acd",
	"msgOutServiceFg":               "3a8e26",
	"msgOutServiceFgSelected":       "367570",
	"msgInShadow":                   "748ea214",
	"msgOutShadow":                  "3ac34c14",
	"msgInDateFg":                   "a0acb6",
	"msgInDateFgSelected":           "6a9cc5",
	"msgOutDateFg":                  "6cc264",
	"msgOutDateFgSelected":          "50a79c",
	"msgServiceFg":                  "ffffff",
	"msgServiceBg":                  "89a0b47f",
	"msgServiceBgSelected":          "8fa9c97f",
	"msgInReplyBarColor":            "419fd9",
	"msgOutReplyBarColor":           "55ab4f",
	"msgImgReplyBarColor":           "ffffff",
	"msgInMonoFg":                   "4e7391",
	"msgOutMonoFg":                  "469165",
	"msgDateImgFg":                  "ffffff",
	"msgDateImgBg":                  "00000054",
	"msgFileThumbLinkInFg":          "168acd",
	"msgFileThumbLinkOutFg":         "55ab4f",
	"msgFileInBg":                   "419fd9",
	"msgFileInBgOver":               "3c95cd",
	"msgFileOutBg":                  "78c67f",
	"msgFileOutBgOver":              "6bc072",
	"msgWaveformInActive":           "419fd9",
	"msgWaveformInInactive":         "bbd0e0",
	"msgWaveformOutActive":          "78c67f",
	"msgWaveformOutInactive":        "b3e2b4",
	"callBg":                        "26282cf2",
	"callNameFg":                    "ffffff",
	"callFingerprintBg":             "00000066",
	"callStatusFg":                  "aaabac",
	"callIconFg":                    "ffffff",
	"callAnswerBg":                  "64c15f",
	"callHangupBg":                  "d75a5a",
	"callCancelBg":                  "ffffff",
	"callCancelFg":                  "777777",
	"callBarBg":                     "419fd9",
	"callBarBgMuted":                "8f8f8f",
	"callBarFg":                     "ffffff",
	"callArrowFg":                   "26b12e",
	"callArrowMissedFg":             "d84d4d",
	"introBg":                       "ffffff",
	"introTitleFg":                  "000000",
	"introDescriptionFg":            "999999",
	"introErrorFg":                  "d84d4d",
	"introCoverTopBg":               "188ce2",
	"introCoverBottomBg":            "188ce2",
	"mediaInFg":                     "a0acb6",
	"mediaOutFg":                    "6cc264",
	"mediaviewFileBg":               "ffffff",
	"mediaviewFileNameFg":           "000000",
	"mediaviewFileSizeFg":           "868686",
	"mediaviewFileExtFg":            "ffffff",
	"mediaviewMenuBg":               "383838",
	"mediaviewMenuBgOver":           "505050",
	"mediaviewMenuFg":               "ffffff",
	"mediaviewBg":                   "222222eb",
	"mediaviewVideoBg":              "000000",
	"mediaviewControlBg":            "0000003c",
	"mediaviewControlFg":            "ffffff",
	"mediaviewCaptionBg":            "11111180",
	"mediaviewCaptionFg":            "ffffff",
	"mediaviewTextLinkFg":           "91d9ff",
	"mediaviewSaveMsgBg":            "000000cc",
	"mediaviewSaveMsgFg":            "ffffff",
	"mediaviewPlaybackActive":       "c7c7c7",
	"mediaviewPlaybackInactive":     "252525",
	"mediaviewPlaybackProgressFg":   "ffffffc7",
	"mediaviewPlaybackIconFg":       "c7c7c7",
	"mediaviewTransparentBg":        "ffffff",
	"mediaviewTransparentFg":        "cccccc",
	"notificationBg":                "ffffff",
	"layerBg":                       "0000007f",
	"cancelIconFg":                  "a2a2a2",
	"boxBg":                         "ffffff",
	"boxTextFg":                     "000000",
	"boxTextFgGood":                 "4ab44a",
	"boxTextFgError":                "d84d4d",
	"boxTitleFg":                    "000000",
	"boxSearchBg":                   "ffffff",
	"boxTitleAdditionalFg":          "999999",
	"boxTitleCloseFg":               "a2a2a2",
	"contactsBg":                    "ffffff",
	"contactsBgOver":                "f1f1f1",
	"contactsNameFg":                "000000",
	"contactsStatusFg":              "999999",
	"contactsStatusFgOnline":        "0f9d58",
	"photoCropFadeBg":               "0000007f",
	"trayCounterBg":                 "f23c34",
	"trayCounterBgMute":             "888888",
	"trayCounterFg":                 "ffffff",
	"smallCloseIconFg":              "c8c8c8",
	"radialFg":                      "ffffff",
	"radialBg":                      "00000056",
	"emojiPanBg":                    "ffffff",
	"emojiPanCategories":            "f7f7f7",
	"emojiPanHeaderFg":              "999999",
	"stickerPreviewBg":              "ffffffb0",
}
